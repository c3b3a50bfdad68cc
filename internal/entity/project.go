package entity

import (
	"context"
	"time"
)

// PastProject is a delivered project used as retrieval evidence when
// matching a lead's requirements. Read-only from the workflow's side.
type PastProject struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	Details     string    `json:"details"`
	Results     string    `json:"results"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectRepositoryInterface interface {
	FindAll(ctx context.Context) ([]PastProject, error)
	Upsert(ctx context.Context, projects []PastProject) error
}
