package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agrimlabs/outreach-agent/internal/infra/http/middleware"
	"github.com/agrimlabs/outreach-agent/internal/usecase"
)

type EmailHandler struct {
	SendUC *usecase.SendEmailUseCase
}

func NewEmailHandler(uc *usecase.SendEmailUseCase) *EmailHandler {
	return &EmailHandler{SendUC: uc}
}

// HandleSend serves POST /api/send-email. The approved flag must be true
// or the request is rejected before any transport work.
func (h *EmailHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	output, err := h.SendUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordEmailSend("failed")
		respondError(w, statusForError(err), err.Error())
		return
	}

	middleware.RecordEmailSend("sent")
	respondJSON(w, http.StatusOK, output)
}
