package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agrimlabs/outreach-agent/internal/entity"
	"github.com/agrimlabs/outreach-agent/internal/infra/integration/groq"
	"github.com/agrimlabs/outreach-agent/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindNew(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Upsert(ctx context.Context, leads []entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]entity.PastProject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PastProject), args.Error(1)
}

func (m *MockProjectRepository) Upsert(ctx context.Context, projects []entity.PastProject) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// MockCompletionGateway
type MockCompletionGateway struct {
	mock.Mock
}

func (m *MockCompletionGateway) Complete(ctx context.Context, messages []groq.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

// MockMatcher
type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) Match(ctx context.Context, requirements map[string]string) ([]entity.PastProject, error) {
	args := m.Called(ctx, requirements)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PastProject), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// MockEventProducer
type MockEventProducer struct {
	mock.Mock
}

func (m *MockEventProducer) PublishEmailSent(ctx context.Context, payload queue.EmailSentPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
