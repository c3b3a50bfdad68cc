package entity

import "strings"

// Fallback subjects applied when the model output has no line break to
// split on. The generation and refinement paths use different ones.
const (
	FallbackSubject        = "Your Customized AI Solutions"
	FallbackRefinedSubject = "Updated Email Draft"
)

// Draft is the in-progress subject/body pair for an outreach email.
// It is never persisted; it only lives inside request/response payloads.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SplitDraft splits a model completion into subject and body on the first
// line break. With no line break the fallback subject is used and the
// whole trimmed text becomes the body. Embedded line breaks after the
// first are left alone.
func SplitDraft(text, fallbackSubject string) Draft {
	parts := strings.SplitN(text, "\n", 2)
	if len(parts) == 2 {
		return Draft{
			Subject: strings.TrimSpace(parts[0]),
			Body:    strings.TrimSpace(parts[1]),
		}
	}
	return Draft{
		Subject: fallbackSubject,
		Body:    strings.TrimSpace(text),
	}
}

// Combined renders the draft back into the single-text form the
// refinement prompt embeds.
func (d Draft) Combined() string {
	return d.Subject + "\n" + d.Body
}

// IsEmpty reports whether both halves are blank.
func (d Draft) IsEmpty() bool {
	return strings.TrimSpace(d.Subject) == "" && strings.TrimSpace(d.Body) == ""
}
