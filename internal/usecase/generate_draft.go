package usecase

import (
	"context"
	"log"

	"github.com/agrimlabs/outreach-agent/internal/entity"
	"github.com/agrimlabs/outreach-agent/internal/infra/integration/groq"
)

// Company placeholder when the lead gave none.
const defaultCompany = "Valued Client"

type GenerateDraftUseCase struct {
	Matcher MatcherStrategy
	Gateway CompletionGateway
}

func NewGenerateDraftUseCase(matcher MatcherStrategy, gateway CompletionGateway) *GenerateDraftUseCase {
	return &GenerateDraftUseCase{
		Matcher: matcher,
		Gateway: gateway,
	}
}

// Execute composes the first draft for a lead: match past projects, build
// the prompt, one completion, split into subject/body. Zero matched
// projects is fine; the draft just carries no references.
func (uc *GenerateDraftUseCase) Execute(ctx context.Context, input GenerateDraftInput) (*GenerateDraftOutput, error) {
	if validationErrors := ValidateGenerateDraftInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(validationErrors),
		}
	}

	matched, err := uc.Matcher.Match(ctx, input.Requirements)
	if err != nil {
		return nil, err
	}

	company := input.Company
	if company == "" {
		company = input.Requirements["company"]
	}
	if company == "" {
		company = defaultCompany
	}

	prompt := buildDraftPrompt(input.Name, company, input.Requirements, matched)

	text, err := uc.Gateway.Complete(ctx, []groq.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		log.Printf("Draft generation failed for %s: %v", input.Email, err)
		return nil, &TechnicalError{
			Code:    CodeCompletionFailed,
			Message: "failed to generate draft: " + err.Error(),
		}
	}

	draft := entity.SplitDraft(text, entity.FallbackSubject)
	if draft.Body == "" {
		return nil, &TechnicalError{
			Code:    CodeCompletionFailed,
			Message: "failed to generate subject or body",
		}
	}

	names := make([]string, 0, len(matched))
	for _, p := range matched {
		names = append(names, p.ProjectName)
	}

	log.Printf("Generated draft for %s", input.Email)
	return &GenerateDraftOutput{
		Subject:         draft.Subject,
		Body:            draft.Body,
		MatchedProjects: names,
	}, nil
}
