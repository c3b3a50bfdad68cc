package usecase

import (
	"context"

	"github.com/agrimlabs/outreach-agent/internal/entity"
	"github.com/agrimlabs/outreach-agent/internal/infra/integration/groq"
	"github.com/agrimlabs/outreach-agent/internal/infra/queue"
)

// CompletionGateway is one round trip with the language-model provider.
// The caller owns the conversation history.
type CompletionGateway interface {
	Complete(ctx context.Context, messages []groq.Message) (string, error)
}

// MatcherStrategy picks the past projects relevant to a lead's
// requirements. Kept as an interface so the lexical matcher can be
// swapped for an embedding-based one without touching the draft flow.
type MatcherStrategy interface {
	Match(ctx context.Context, requirements map[string]string) ([]entity.PastProject, error)
}

type EmailService interface {
	Send(to, subject, body string) error
}

type EventProducerInterface interface {
	PublishEmailSent(ctx context.Context, payload queue.EmailSentPayload) error
}
