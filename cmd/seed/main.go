// Administrative bulk loader: creates the two tables if they are missing
// and upserts sample leads and past projects. Not part of the live
// workflow; run it once against a fresh database.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/agrimlabs/outreach-agent/internal/config"
	"github.com/agrimlabs/outreach-agent/internal/entity"
	"github.com/agrimlabs/outreach-agent/internal/infra/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	company TEXT,
	email TEXT,
	requirements TEXT,
	status TEXT DEFAULT 'new'
);

CREATE TABLE IF NOT EXISTS past_projects (
	id TEXT PRIMARY KEY,
	project_name TEXT NOT NULL,
	details TEXT,
	results TEXT,
	created_at TIMESTAMP DEFAULT NOW()
);
`

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	leadRepo := database.NewLeadRepository(db)
	projectRepo := database.NewProjectRepository(db)

	leads := []entity.Lead{
		{
			ID:      uuid.New().String(),
			Name:    "John Doe",
			Company: "Acme Corp",
			Email:   "john.doe@example.com",
			Requirements: map[string]string{
				"objective":   "Customer Engagement",
				"industry":    "Technology",
				"description": "Need an AI chatbot for customer support",
			},
			Status: entity.StatusNew,
		},
		{
			ID:      uuid.New().String(),
			Name:    "Jane Smith",
			Company: "Tech Inc",
			Email:   "jane.smith@techinc.com",
			Requirements: map[string]string{
				"objective":   "Process Automation",
				"industry":    "Manufacturing",
				"description": "Looking for ML solution for quality control",
			},
			Status: entity.StatusNew,
		},
	}

	projects := []entity.PastProject{
		{
			ID:          uuid.New().String(),
			ProjectName: "ChatBot",
			Details:     "Implemented a conversational AI solution.",
			Results:     "Increased customer engagement",
			CreatedAt:   time.Now(),
		},
		{
			ID:          uuid.New().String(),
			ProjectName: "Data Analysis",
			Details:     "Performed extensive data analysis.",
			Results:     "Improved decision making",
			CreatedAt:   time.Now(),
		},
	}

	if err := leadRepo.Upsert(ctx, leads); err != nil {
		log.Fatalf("seed leads: %v", err)
	}
	if err := projectRepo.Upsert(ctx, projects); err != nil {
		log.Fatalf("seed past projects: %v", err)
	}

	log.Printf("Database seeded with %d lead(s) and %d past project(s)", len(leads), len(projects))
}
