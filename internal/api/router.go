package api

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted under /api.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{id}/items", h.ListItems)

		// Timeline feed consumed by the Gantt client.
		r.Get("/schedule", h.GlobalSchedule)
		r.Get("/projects/{id}/schedule", h.ProjectSchedule)
		r.Post("/projects/{id}/schedule", h.ScheduleMutation)
	})
	return r
}
