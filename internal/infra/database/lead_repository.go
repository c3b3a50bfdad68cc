package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"github.com/agrimlabs/outreach-agent/internal/entity"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// FindNew returns every lead whose status is still "new", with the raw
// requirements column parsed into a map. Storage errors are returned to
// the caller so an empty slice always means "no new leads".
func (r *LeadRepository) FindNew(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT id, name, company, email, requirements, status
		FROM leads
		WHERE status = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.StatusNew)
	if err != nil {
		log.Printf("Error fetching new leads: %v", err)
		return nil, fmt.Errorf("query new leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		var company, requirements sql.NullString

		if err := rows.Scan(&lead.ID, &lead.Name, &company, &lead.Email, &requirements, &lead.Status); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}

		lead.Company = company.String
		lead.Requirements = entity.ParseRequirements(requirements.String)
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	log.Printf("Retrieved %d new lead(s)", len(leads))
	return leads, nil
}

// Upsert inserts or updates a batch of leads by id. Used by the bulk
// loader, not by the live workflow.
func (r *LeadRepository) Upsert(ctx context.Context, leads []entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, company, email, requirements, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			company = EXCLUDED.company,
			email = EXCLUDED.email,
			requirements = EXCLUDED.requirements,
			status = EXCLUDED.status
	`

	for _, lead := range leads {
		status := lead.Status
		if status == "" {
			status = entity.StatusNew
		}

		_, err := r.DB.ExecContext(ctx, query,
			lead.ID,
			lead.Name,
			nullString(lead.Company),
			lead.Email,
			nullString(entity.EncodeRequirements(lead.Requirements)),
			status,
		)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) {
				log.Printf("Postgres error %s upserting lead %s: %v", pqErr.Code, lead.ID, err)
			}
			return fmt.Errorf("upsert lead %s: %w", lead.ID, err)
		}
	}

	return nil
}

// UpdateStatus moves one lead to a new status. The status-sync worker
// calls this after a successful send.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	if affected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
