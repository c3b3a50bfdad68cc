package entity

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	StatusNew        = "new"
	StatusInProgress = "in progress"
)

// Lead is a prospective client captured by the intake process.
// Status is free text in the database ("new", "in progress", ...) so it is
// kept as a plain string here, not a closed enum.
type Lead struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Company      string            `json:"company,omitempty"`
	Email        string            `json:"email"`
	Requirements map[string]string `json:"requirements"`
	Status       string            `json:"status"`
}

type LeadRepositoryInterface interface {
	FindNew(ctx context.Context) ([]Lead, error)
	Upsert(ctx context.Context, leads []Lead) error
	UpdateStatus(ctx context.Context, id, status string) error
}

// ParseRequirements turns the raw requirements column into a map.
// Valid JSON objects are decoded (non-string values are stringified);
// any other non-empty text becomes {"description": raw}; empty input
// yields an empty map.
func ParseRequirements(raw string) map[string]string {
	if raw == "" {
		return map[string]string{}
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return map[string]string{"description": raw}
	}

	result := make(map[string]string, len(decoded))
	for k, v := range decoded {
		switch val := v.(type) {
		case string:
			result[k] = val
		default:
			result[k] = fmt.Sprintf("%v", val)
		}
	}
	return result
}

// EncodeRequirements is the inverse used by the bulk loader.
func EncodeRequirements(req map[string]string) string {
	if len(req) == 0 {
		return ""
	}
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return string(raw)
}
