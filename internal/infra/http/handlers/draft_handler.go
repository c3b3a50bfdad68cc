package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/agrimlabs/outreach-agent/internal/infra/http/middleware"
	"github.com/agrimlabs/outreach-agent/internal/usecase"
)

type DraftHandler struct {
	GenerateUC  *usecase.GenerateDraftUseCase
	RefineUC    *usecase.RefineDraftUseCase
	rateLimiter *RateLimiter
}

func NewDraftHandler(generateUC *usecase.GenerateDraftUseCase, refineUC *usecase.RefineDraftUseCase) *DraftHandler {
	return &DraftHandler{
		GenerateUC:  generateUC,
		RefineUC:    refineUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// HandleGenerate serves POST /api/draft-email.
func (h *DraftHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.GenerateDraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	output, err := h.GenerateUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordCompletionError()
		}
		respondError(w, statusForError(err), err.Error())
		return
	}

	middleware.RecordDraftGenerated()
	respondJSON(w, http.StatusOK, output)
}

// HandleRefine serves POST /api/update-draft.
func (h *DraftHandler) HandleRefine(w http.ResponseWriter, r *http.Request) {
	var input usecase.RefineDraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	output, err := h.RefineUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordCompletionError()
		}
		respondError(w, statusForError(err), err.Error())
		return
	}

	middleware.RecordDraftRefinement()
	respondJSON(w, http.StatusOK, output)
}
