package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/agrimlabs/outreach-agent/internal/entity"
)

type ProjectRepository struct {
	DB *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// FindAll loads the whole retrieval corpus. No filtering is pushed down;
// the matcher always sees every project.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]entity.PastProject, error) {
	query := `
		SELECT id, project_name, details, results, created_at
		FROM past_projects
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error fetching past projects: %v", err)
		return nil, fmt.Errorf("query past projects: %w", err)
	}
	defer rows.Close()

	var projects []entity.PastProject
	for rows.Next() {
		var p entity.PastProject
		var details, results sql.NullString

		if err := rows.Scan(&p.ID, &p.ProjectName, &details, &results, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan past project: %w", err)
		}

		p.Details = details.String
		p.Results = results.String
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate past projects: %w", err)
	}

	log.Printf("Retrieved %d past project(s)", len(projects))
	return projects, nil
}

// Upsert inserts or updates delivered projects by id, for administrative
// loading of the matching corpus.
func (r *ProjectRepository) Upsert(ctx context.Context, projects []entity.PastProject) error {
	query := `
		INSERT INTO past_projects (id, project_name, details, results, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			project_name = EXCLUDED.project_name,
			details = EXCLUDED.details,
			results = EXCLUDED.results,
			created_at = EXCLUDED.created_at
	`

	for _, p := range projects {
		_, err := r.DB.ExecContext(ctx, query,
			p.ID,
			p.ProjectName,
			nullString(p.Details),
			nullString(p.Results),
			p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert past project %s: %w", p.ID, err)
		}
	}

	return nil
}
