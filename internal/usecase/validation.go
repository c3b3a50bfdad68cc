package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateGenerateDraftInput(input GenerateDraftInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidateRefineDraftInput(input RefineDraftInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Subject) == "" && strings.TrimSpace(input.Body) == "" {
		errors = append(errors, ValidationError{"draft", "is required"})
	}

	if strings.TrimSpace(input.Feedback) == "" {
		errors = append(errors, ValidationError{"feedback", "is required"})
	}

	return errors
}

// ValidateSendEmailInput checks the dispatch preconditions. Approval is
// checked separately so the facade can answer with a distinct message.
func ValidateSendEmailInput(input SendEmailInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Subject) == "" {
		errors = append(errors, ValidationError{"subject", "is required"})
	}

	if strings.TrimSpace(input.Body) == "" {
		errors = append(errors, ValidationError{"body", "is required"})
	}

	return errors
}

func validationMessage(errors []ValidationError) string {
	msg := "validation failed: "
	for i, e := range errors {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return msg
}
