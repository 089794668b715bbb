package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/dualinkhq/dualink-api/internal/database"
	"github.com/dualinkhq/dualink-api/internal/genai"
	"github.com/dualinkhq/dualink-api/internal/inspiration"
	"github.com/dualinkhq/dualink-api/internal/mail"
	"github.com/dualinkhq/dualink-api/internal/subscription"
	"github.com/dualinkhq/dualink-api/pkg/config"
)

type Server struct {
	port       string
	db         database.Service
	handler    http.Handler
	cfg        *config.Config
	mail       *mail.Mailer
	gen        *genai.Client
	subService subscription.SubscriptionService
	cancel     context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config) *Server {
	stats := db.Health()
	if stats["status"] != "up" {
		log.Fatalf("Database connection failed: %s", stats["error"])
	}
	log.Println("Database connection successful")

	if cfg.GoogleAPIKey == "" {
		log.Println("WARNING: GOOGLE_API_KEY is not set; generation endpoints will fail")
	}

	mailer := mail.NewMail(
		cfg.SmtpFrom,
		"DuaLink",
		cfg.SmtpPassword,
		cfg.SmtpHost,
		cfg.SmtpPort,
	)

	gen := genai.NewClient(cfg.GoogleAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)

	inspRepo := inspiration.NewInspirationRepo(db)
	inspService := inspiration.NewInspirationService(inspRepo, gen)
	subRepo := subscription.NewSubscriptionRepo(db)
	subService := subscription.NewSubscriptionService(subRepo, inspService, mailer)

	s := &Server{
		port:       cfg.Port,
		db:         db,
		cfg:        cfg,
		mail:       mailer,
		gen:        gen,
		subService: subService,
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs scheduled jobs
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.subService.StartScheduler(ctx)
	log.Println("Inspiration delivery scheduler started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		log.Println("Background jobs stopped gracefully")
	}
}
