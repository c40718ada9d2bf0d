// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. A nil metricsHandler
// leaves /metrics unregistered.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	healthHandler *handlers.HealthHandler,
	metricsHandler http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	// API v1 routes.
	r.Route("/api/v1/projects", func(r chi.Router) {
		r.Get("/", projectHandler.ListProjects)
		r.Post("/", projectHandler.CreateProject)

		// Static segments are matched before {projectId}.
		r.Get("/active", projectHandler.ListActiveProjects)
		r.Get("/tag/{tag}", projectHandler.ListProjectsByTag)

		r.Route("/{projectId}", func(r chi.Router) {
			r.Get("/", projectHandler.GetProject)
			r.Patch("/", projectHandler.UpdateProject)
			r.Delete("/", projectHandler.DeleteProject)
			r.Get("/similar", projectHandler.FindSimilarProjects)

			// Funding.
			r.Post("/progress", projectHandler.Contribute)
			r.Post("/adjustments", projectHandler.AdjustFunding)

			// Team.
			r.Post("/team", projectHandler.AddTeamMember)
			r.Delete("/team/{memberName}", projectHandler.RemoveTeamMember)

			// Log and milestones.
			r.Post("/updates", projectHandler.PostUpdate)
			r.Post("/milestones", projectHandler.AddMilestone)
			r.Patch("/milestones/{title}", projectHandler.AdvanceMilestone)
		})
	})

	return r
}
