package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/deckhaus/storesync/internal/config"
	"github.com/deckhaus/storesync/internal/database"
	"github.com/deckhaus/storesync/internal/middleware"
	"github.com/deckhaus/storesync/internal/repository"
	"github.com/deckhaus/storesync/internal/syncer"
	"github.com/deckhaus/storesync/internal/websocket"
	"github.com/gorilla/mux"
)

// Router wraps the mux router and its collaborators
type Router struct {
	*mux.Router
	cfg  *config.Config
	db   *database.DB
	repo *repository.Repository
	orch *syncer.Orchestrator
	hub  *websocket.Hub
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(cfg *config.Config, db *database.DB, repo *repository.Repository, orch *syncer.Orchestrator, hub *websocket.Hub) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		cfg:    cfg,
		db:     db,
		repo:   repo,
		orch:   orch,
		hub:    hub,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))

	sh := NewSyncHandler(orch, repo)
	sh.RegisterRoutes(api)

	// Dashboard event stream
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		websocket.ServeWs(hub, w, req)
	})

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
