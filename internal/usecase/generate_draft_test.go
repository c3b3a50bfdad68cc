package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/agrimlabs/outreach-agent/internal/entity"
	"github.com/agrimlabs/outreach-agent/internal/infra/integration/groq"
)

func TestGenerateDraftSuccess(t *testing.T) {
	ctx := context.Background()

	mockMatcher := new(MockMatcher)
	mockGateway := new(MockCompletionGateway)

	mockMatcher.On("Match", ctx, mock.Anything).Return([]entity.PastProject{
		{ProjectName: "ChatBot", Details: "Conversational AI."},
	}, nil)
	mockGateway.On("Complete", ctx, mock.Anything).
		Return("AI That Knows Your Customers\nHi John,\nWe built ChatBot for a retailer like you.", nil)

	uc := NewGenerateDraftUseCase(mockMatcher, mockGateway)

	output, err := uc.Execute(ctx, GenerateDraftInput{
		Name:         "John",
		Email:        "john@x.com",
		Requirements: map[string]string{"objective": "Customer Engagement", "industry": "Retail"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "AI That Knows Your Customers", output.Subject)
	assert.Equal(t, "Hi John,\nWe built ChatBot for a retailer like you.", output.Body)
	assert.Equal(t, []string{"ChatBot"}, output.MatchedProjects)
}

func TestGenerateDraftZeroMatchedProjectsStillDrafts(t *testing.T) {
	ctx := context.Background()

	mockMatcher := new(MockMatcher)
	mockGateway := new(MockCompletionGateway)

	mockMatcher.On("Match", ctx, mock.Anything).Return([]entity.PastProject{}, nil)

	var prompt string
	mockGateway.On("Complete", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			messages := args.Get(1).([]groq.Message)
			prompt = messages[0].Content
		}).
		Return("Helping Retail Engage Customers\nHi John, we can help.", nil)

	uc := NewGenerateDraftUseCase(mockMatcher, mockGateway)

	output, err := uc.Execute(ctx, GenerateDraftInput{
		Name:         "John",
		Email:        "john@x.com",
		Requirements: map[string]string{"objective": "Customer Engagement", "industry": "Retail"},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.Subject)
	assert.NotEmpty(t, output.Body)
	assert.Empty(t, output.MatchedProjects)
	assert.Contains(t, prompt, "Name: John")
	assert.Contains(t, prompt, "Company: Valued Client")
}

func TestGenerateDraftFallbackSubject(t *testing.T) {
	ctx := context.Background()

	mockMatcher := new(MockMatcher)
	mockGateway := new(MockCompletionGateway)

	mockMatcher.On("Match", ctx, mock.Anything).Return([]entity.PastProject{}, nil)
	mockGateway.On("Complete", ctx, mock.Anything).
		Return("a single line with no break at all", nil)

	uc := NewGenerateDraftUseCase(mockMatcher, mockGateway)

	output, err := uc.Execute(ctx, GenerateDraftInput{Name: "John", Email: "john@x.com"})

	assert.NoError(t, err)
	assert.Equal(t, entity.FallbackSubject, output.Subject)
	assert.Equal(t, "a single line with no break at all", output.Body)
}

func TestGenerateDraftMissingNameAndEmail(t *testing.T) {
	ctx := context.Background()

	mockMatcher := new(MockMatcher)
	mockGateway := new(MockCompletionGateway)

	uc := NewGenerateDraftUseCase(mockMatcher, mockGateway)

	_, err := uc.Execute(ctx, GenerateDraftInput{})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	mockMatcher.AssertNotCalled(t, "Match", mock.Anything, mock.Anything)
	mockGateway.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestGenerateDraftInvalidEmail(t *testing.T) {
	ctx := context.Background()

	uc := NewGenerateDraftUseCase(new(MockMatcher), new(MockCompletionGateway))

	_, err := uc.Execute(ctx, GenerateDraftInput{Name: "John", Email: "not-an-address"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestGenerateDraftCompletionFailure(t *testing.T) {
	ctx := context.Background()

	mockMatcher := new(MockMatcher)
	mockGateway := new(MockCompletionGateway)

	mockMatcher.On("Match", ctx, mock.Anything).Return([]entity.PastProject{}, nil)
	mockGateway.On("Complete", ctx, mock.Anything).Return("", errors.New("upstream timeout"))

	uc := NewGenerateDraftUseCase(mockMatcher, mockGateway)

	_, err := uc.Execute(ctx, GenerateDraftInput{Name: "John", Email: "john@x.com"})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
}

func TestGenerateDraftEmptyCompletion(t *testing.T) {
	ctx := context.Background()

	mockMatcher := new(MockMatcher)
	mockGateway := new(MockCompletionGateway)

	mockMatcher.On("Match", ctx, mock.Anything).Return([]entity.PastProject{}, nil)
	mockGateway.On("Complete", ctx, mock.Anything).Return("", nil)

	uc := NewGenerateDraftUseCase(mockMatcher, mockGateway)

	_, err := uc.Execute(ctx, GenerateDraftInput{Name: "John", Email: "john@x.com"})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.Contains(t, err.Error(), "failed to generate subject or body")
}

func TestGenerateDraftExplicitCompanyWins(t *testing.T) {
	ctx := context.Background()

	mockMatcher := new(MockMatcher)
	mockGateway := new(MockCompletionGateway)

	mockMatcher.On("Match", ctx, mock.Anything).Return([]entity.PastProject{}, nil)

	var prompt string
	mockGateway.On("Complete", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			messages := args.Get(1).([]groq.Message)
			prompt = messages[0].Content
		}).
		Return("S\nB", nil)

	uc := NewGenerateDraftUseCase(mockMatcher, mockGateway)

	_, err := uc.Execute(ctx, GenerateDraftInput{
		Name:         "Jane",
		Email:        "jane@x.com",
		Company:      "Tech Inc",
		Requirements: map[string]string{"company": "Shadow Corp"},
	})

	assert.NoError(t, err)
	assert.Contains(t, prompt, "Company: Tech Inc")
}
