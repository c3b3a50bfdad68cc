package usecase

import (
	"context"
	"log"

	"github.com/agrimlabs/outreach-agent/internal/entity"
	"github.com/agrimlabs/outreach-agent/internal/infra/integration/groq"
)

type RefineDraftUseCase struct {
	Gateway CompletionGateway
}

func NewRefineDraftUseCase(gateway CompletionGateway) *RefineDraftUseCase {
	return &RefineDraftUseCase{Gateway: gateway}
}

// Execute reworks the current draft against reviewer feedback. Pure from
// the model's point of view: same draft and feedback, same prompt.
func (uc *RefineDraftUseCase) Execute(ctx context.Context, input RefineDraftInput) (*RefineDraftOutput, error) {
	if validationErrors := ValidateRefineDraftInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(validationErrors),
		}
	}

	current := entity.Draft{Subject: input.Subject, Body: input.Body}
	prompt := buildRefinePrompt(current.Combined(), input.Feedback)

	text, err := uc.Gateway.Complete(ctx, []groq.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		log.Printf("Draft refinement failed: %v", err)
		return nil, &TechnicalError{
			Code:    CodeCompletionFailed,
			Message: "failed to update draft: " + err.Error(),
		}
	}

	draft := entity.SplitDraft(text, entity.FallbackRefinedSubject)

	log.Printf("Email draft updated with provided feedback")
	return &RefineDraftOutput{
		Subject: draft.Subject,
		Body:    draft.Body,
	}, nil
}
