package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dualinkhq/dualink-api/internal/contact"
	"github.com/dualinkhq/dualink-api/internal/dua"
	"github.com/dualinkhq/dualink-api/internal/inspiration"
	"github.com/dualinkhq/dualink-api/internal/subscription"
	"github.com/dualinkhq/dualink-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.ServerIsWorking)

	s.loadInspirationRoutes(r)
	s.loadDuaRoutes(r)
	s.loadContactRoutes(r)
	s.loadSubscriptionRoutes(r)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to DuaLink api"
	response.Success(w, resp)
}

func (s *Server) loadInspirationRoutes(router chi.Router) {
	inspRepo := inspiration.NewInspirationRepo(s.db)
	inspService := inspiration.NewInspirationService(inspRepo, s.gen)
	inspHandler := inspiration.NewInspirationHandler(inspService)

	// The UI's midnight refresh posts with an attempt counter; both verbs
	// serve the same read-through path.
	router.Get("/dailyinspiration", inspHandler.DailyInspirationHandler)
	router.Post("/dailyinspiration", inspHandler.DailyInspirationHandler)
}

func (s *Server) loadDuaRoutes(router chi.Router) {
	duaRepo := dua.NewDuaRepo(s.db)
	duaService := dua.NewDuaService(duaRepo, s.gen)
	duaHandler := dua.NewDuaHandler(duaService)

	router.Post("/checkdua", duaHandler.CheckDuaHandler)
	router.Get("/duas", duaHandler.ListDuasHandler)
	router.Post("/duas/{id}/resonance", duaHandler.ResonanceHandler)
}

func (s *Server) loadContactRoutes(router chi.Router) {
	contactService := contact.NewContactService(s.mail, s.cfg.ContactTo)
	contactHandler := contact.NewContactHandler(contactService)

	router.Post("/contact", contactHandler.ContactHandler)
}

func (s *Server) loadSubscriptionRoutes(router chi.Router) {
	subHandler := subscription.NewSubscriptionHandler(s.subService)

	router.Post("/subscribe", subHandler.SubscribeHandler)
	router.Get("/unsubscribe", subHandler.UnsubscribeHandler)
}
