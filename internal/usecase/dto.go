package usecase

import "github.com/agrimlabs/outreach-agent/internal/entity"

type GenerateDraftInput struct {
	LeadID       string            `json:"lead_id,omitempty"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Company      string            `json:"company,omitempty"`
	Requirements map[string]string `json:"requirements,omitempty"`
}

type GenerateDraftOutput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	// MatchedProjects is informational; the front-end shows the operator
	// which delivered work the draft leans on.
	MatchedProjects []string `json:"matched_projects,omitempty"`
}

type RefineDraftInput struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Feedback string `json:"feedback"`
}

type RefineDraftOutput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SendEmailInput struct {
	LeadID       string            `json:"lead_id,omitempty"`
	Name         string            `json:"name,omitempty"`
	Email        string            `json:"email"`
	Requirements map[string]string `json:"requirements,omitempty"`
	Subject      string            `json:"subject"`
	Body         string            `json:"body"`
	Approved     bool              `json:"approved"`
}

type SendEmailOutput struct {
	Message string `json:"message"`
}

type ListLeadsOutput struct {
	Leads []entity.Lead `json:"leads"`
}
