// Package web is the HTTP boundary: routing, the session cookie transport,
// and the mapping from service errors to statuses.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripplanner/internal/config"
	"tripplanner/internal/service"
)

// Server holds the handlers' dependencies. Everything is injected at
// construction; there is no ambient global state.
type Server struct {
	cfg   *config.Config
	auth  *service.AuthService
	trips *service.TripService
	admin *service.AdminService
}

// NewServer creates a Server with the given configuration and services.
func NewServer(cfg *config.Config, auth *service.AuthService, trips *service.TripService, admin *service.AdminService) *Server {
	return &Server{cfg: cfg, auth: auth, trips: trips, admin: admin}
}

// Handler builds the full route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(metricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/me", s.handleMe)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.handleCreateTrip)
			r.Get("/", s.handleListTrips)
			r.Get("/{tripID}", s.handleGetTrip)
			r.Put("/{tripID}", s.handleUpdateTrip)
			r.Delete("/{tripID}", s.handleDeleteTrip)
			r.Post("/{tripID}/members", s.handleAddMember)
			r.Delete("/{tripID}/members/{nickname}", s.handleRemoveMember)
			r.Post("/{tripID}/expenses", s.handleAddExpense)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", s.handleListUsers)
			r.Delete("/users/{userID}", s.handleDeleteUser)
		})
	})

	return r
}
