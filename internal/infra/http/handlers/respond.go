package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agrimlabs/outreach-agent/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// statusForError maps the use-case taxonomy to HTTP: business rejections
// are the client's fault, everything else is ours.
func statusForError(err error) int {
	if usecase.IsDomainError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
