/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers;
  the engine itself never sees HTTP.

MIDDLEWARE STACK:
  1. CORS:          Cross-origin requests for a browser frontend
  2. RequestLogger: Structured request logging (httplog over slog)
  3. Recoverer:     Panic recovery (500 instead of crash)
  4. Heartbeat:     Liveness probe on /

ROUTE GROUPS:
  /api/sheets/*     Timesheet sessions: create, punch entry, reports
  /api/rules/*      Rule sets: built-in presets and custom JSON rules
  /api/scenarios/*  Demo scenario loaders

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-engine"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/sheets", func(r chi.Router) {
			r.Get("/", h.ListSheets)
			r.Post("/", h.CreateSheet)
			r.Get("/{id}", h.GetSheet)
			r.Delete("/{id}", h.DeleteSheet)
			r.Put("/{id}/days/{day}", h.SetPunches)
			r.Delete("/{id}/days", h.ClearPunches)
			r.Get("/{id}/report", h.GetReport)
		})

		r.Route("/rules", func(r chi.Router) {
			r.Get("/", h.ListRules)
			r.Post("/", h.CreateRules)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
			r.Post("/reset", h.ResetStore)
		})
	})

	return r
}
