package handlers

import (
	"net/http"

	"github.com/agrimlabs/outreach-agent/internal/usecase"
)

type LeadHandler struct {
	ListLeadsUC *usecase.ListLeadsUseCase
}

func NewLeadHandler(uc *usecase.ListLeadsUseCase) *LeadHandler {
	return &LeadHandler{ListLeadsUC: uc}
}

// HandleList serves GET /api/leads. A storage failure is a 500, not an
// empty 200; the front-end must be able to tell the two apart.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListLeadsUC.Execute(r.Context())
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, output.Leads)
}
