// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hojoonlee/toondex/internal/core"
)

// Server holds the dependencies for our API.
type Server struct {
	app *core.App
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{app: app}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/webtoons", s.handleListWebtoons)
		r.Get("/platforms", s.handleListPlatforms)

		// Spreadsheet exports
		r.Post("/exports", s.handleCreateExport)
		r.Get("/exports/latest", s.handleGetLatestExport)

		// Job Triggers
		r.Get("/jobs/status", s.handleGetJobsStatus)
		r.Post("/jobs/run", s.handleRunJob)

		r.Get("/version", s.handleGetVersion)
		r.Get("/config", s.handleGetConfig)
		r.Get("/health", s.handleHealth)
	})

	// WebSocket route
	r.Get("/ws/progress", func(w http.ResponseWriter, r *http.Request) {
		s.app.WsHub().ServeWs(w, r)
	})

	return r
}
