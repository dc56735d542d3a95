package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/timetrack-backend/internal/transport/middleware"
)

// RouterDeps bundles what NewRouter needs to mount every endpoint.
type RouterDeps struct {
	Health  *HealthHandler
	Entries *EntryHandler
	Reports *ReportHandler
	Admin   *AdminHandler

	// Metrics serves /metrics; nil disables the endpoint.
	Metrics http.Handler

	// Middleware applied to every route, outermost first.
	Global []middleware.Middleware
	// Middleware applied to /api/v1 after identity resolution.
	API []middleware.Middleware
	// Auth resolves bearer tokens into the request context.
	Auth middleware.Middleware
}

// NewRouter mounts health probes, metrics and the versioned JSON API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	for _, mw := range d.Global {
		r.Use(mw)
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Chain(d.Auth, middleware.RequireIdentity, middleware.Chain(d.API...)))

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", d.Entries.Start)
			r.Get("/", d.Entries.List)
			r.Get("/active", d.Entries.Active)
			r.Post("/{id}/stop", d.Entries.Stop)
			r.Patch("/{id}/start-time", d.Entries.AdjustStartTime)
		})
		r.Get("/projects/assigned", d.Entries.AssignedProjects)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/entries", d.Reports.Entries)
			r.Get("/summary", d.Reports.Summary)
			r.Get("/filters", d.Reports.Filters)
			r.Get("/export.csv", d.Reports.Export)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/projects", d.Admin.CreateProject)
			r.Patch("/projects/{id}/status", d.Admin.UpdateProjectStatus)
			r.Post("/projects/{id}/tasks", d.Admin.CreateTask)
			r.Put("/projects/{id}/assignments/{userID}", d.Admin.AssignWorker)
			r.Post("/tasks/{id}/toggle", d.Admin.ToggleTask)
		})
	})

	return r
}
