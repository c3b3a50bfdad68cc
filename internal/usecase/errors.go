package usecase

// Error codes surfaced through the facade. Clients only ever see the
// message text; the codes keep the taxonomy straight internally.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotApproved      = "NOT_APPROVED"
	CodeCompletionFailed = "COMPLETION_FAILED"
	CodeMailFailed       = "MAIL_FAILED"
	CodeDatabaseError    = "DATABASE_ERROR"
)

// DomainError is a business-rule rejection: bad input, unapproved send.
// The request was understood and refused.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure: storage, completion API,
// SMTP. The request was valid but could not be served.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
