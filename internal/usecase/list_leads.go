package usecase

import (
	"context"

	"github.com/agrimlabs/outreach-agent/internal/entity"
)

type ListLeadsUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(leads entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Leads: leads}
}

// Execute returns every lead still in "new". A storage failure comes back
// as an error, never as a silent empty list, so callers can tell "no
// leads" apart from "read failed".
func (uc *ListLeadsUseCase) Execute(ctx context.Context) (*ListLeadsOutput, error) {
	leads, err := uc.Leads.FindNew(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to fetch leads: " + err.Error(),
		}
	}

	if leads == nil {
		leads = []entity.Lead{}
	}

	return &ListLeadsOutput{Leads: leads}, nil
}
