package handlers

import (
	"context"

	"github.com/agrimlabs/outreach-agent/internal/entity"
	"github.com/agrimlabs/outreach-agent/internal/infra/integration/groq"
)

// Lightweight stubs for wiring real use cases under httptest. They count
// invocations so tests can prove a rejected request never reached an
// external system.

type stubGateway struct {
	response string
	err      error
	calls    int
}

func (s *stubGateway) Complete(ctx context.Context, messages []groq.Message) (string, error) {
	s.calls++
	return s.response, s.err
}

type stubMatcher struct {
	projects []entity.PastProject
	err      error
}

func (s *stubMatcher) Match(ctx context.Context, requirements map[string]string) ([]entity.PastProject, error) {
	return s.projects, s.err
}

type stubMailer struct {
	err   error
	calls int
}

func (s *stubMailer) Send(to, subject, body string) error {
	s.calls++
	return s.err
}

type stubLeadRepo struct {
	leads []entity.Lead
	err   error
}

func (s *stubLeadRepo) FindNew(ctx context.Context) ([]entity.Lead, error) {
	return s.leads, s.err
}

func (s *stubLeadRepo) Upsert(ctx context.Context, leads []entity.Lead) error {
	return nil
}

func (s *stubLeadRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}
