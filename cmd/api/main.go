package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agrimlabs/outreach-agent/internal/config"
	"github.com/agrimlabs/outreach-agent/internal/infra/database"
	"github.com/agrimlabs/outreach-agent/internal/infra/http/handlers"
	"github.com/agrimlabs/outreach-agent/internal/infra/http/middleware"
	"github.com/agrimlabs/outreach-agent/internal/infra/integration/groq"
	"github.com/agrimlabs/outreach-agent/internal/infra/mail"
	"github.com/agrimlabs/outreach-agent/internal/infra/queue"
	"github.com/agrimlabs/outreach-agent/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewConnection(cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.User, cfg.RabbitMQ.Pass, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	projectRepo := database.NewProjectRepository(db)

	// 2. Gateways and adapters
	completions := groq.NewClient(cfg.Groq.APIKey, cfg.Groq.URL, cfg.Groq.Model)
	mailSender := mail.NewEmailSender(cfg.SMTP.Server, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. Worker (consumes email-sent events, syncs lead status)
	worker := queue.NewWorker(rabbitMQ.Ch, leadRepo)
	go worker.Start(queue.QueueName)

	// 4. Use cases
	matcher := usecase.NewCompletionMatcher(projectRepo, completions)
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	generateDraftUC := usecase.NewGenerateDraftUseCase(matcher, completions)
	refineDraftUC := usecase.NewRefineDraftUseCase(completions)
	sendEmailUC := usecase.NewSendEmailUseCase(mailSender, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(listLeadsUC)
	draftHandler := handlers.NewDraftHandler(generateDraftUC, refineDraftUC)
	emailHandler := handlers.NewEmailHandler(sendEmailUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/api/leads", leadHandler.HandleList)
	r.Post("/api/draft-email", draftHandler.HandleGenerate)
	r.Post("/api/update-draft", draftHandler.HandleRefine)
	r.Post("/api/send-email", emailHandler.HandleSend)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.HTTPPort
	log.Printf("🔥 Outreach agent running on %s", addr)
	http.ListenAndServe(addr, r)
}
