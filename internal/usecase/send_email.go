package usecase

import (
	"context"
	"log"

	"github.com/agrimlabs/outreach-agent/internal/infra/queue"
)

type SendEmailUseCase struct {
	Mailer EmailService
	Events EventProducerInterface
}

func NewSendEmailUseCase(mailer EmailService, events EventProducerInterface) *SendEmailUseCase {
	return &SendEmailUseCase{
		Mailer: mailer,
		Events: events,
	}
}

// Execute dispatches one approved email. The approval gate and the field
// validation both run before any transport call; a rejected request never
// touches SMTP. Exactly one delivery attempt, no retry.
func (uc *SendEmailUseCase) Execute(ctx context.Context, input SendEmailInput) (*SendEmailOutput, error) {
	if !input.Approved {
		return nil, &DomainError{
			Code:    CodeNotApproved,
			Message: "Email must be approved before sending",
		}
	}

	if validationErrors := ValidateSendEmailInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(validationErrors),
		}
	}

	if err := uc.Mailer.Send(input.Email, input.Subject, input.Body); err != nil {
		return nil, &TechnicalError{
			Code:    CodeMailFailed,
			Message: "failed to send email: " + err.Error(),
		}
	}

	// The email is already out; a broken broker must not fail the call.
	if uc.Events != nil {
		err := uc.Events.PublishEmailSent(ctx, queue.EmailSentPayload{
			LeadID:  input.LeadID,
			Email:   input.Email,
			Subject: input.Subject,
		})
		if err != nil {
			log.Printf("Failed to publish email-sent event for %s: %v", input.Email, err)
		}
	}

	log.Printf("Email sent to %s", input.Email)
	return &SendEmailOutput{Message: "Email sent successfully"}, nil
}
