// Package api exposes the timeline feed and budget read models over HTTP
// using chi. Schedule mutations follow the Gantt client's convention:
// failures answer HTTP 200 with an {"action":"error"} body, because the
// client keys off the action field rather than the status code.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkovari/costline/internal/feed"
	"github.com/mkovari/costline/internal/service"
)

// Handler holds API route handlers.
type Handler struct {
	projects service.ProjectService
	items    service.LineItemService
	schedule service.ScheduleService

	// now is replaceable in tests; timelines chain from "today" when a
	// project has no start date.
	now func() time.Time
}

// NewHandler creates a new Handler.
func NewHandler(projects service.ProjectService, items service.LineItemService, schedule service.ScheduleService) *Handler {
	return &Handler{projects: projects, items: items, schedule: schedule, now: time.Now}
}

// ListProjects handles GET /api/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	list, err := h.projects.List(r.Context())
	if err != nil {
		slog.Error("list projects failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	out := make([]ProjectSummary, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectSummary(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": out})
}

// ListItems handles GET /api/projects/{id}/items.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	list, err := h.items.ListByProject(r.Context(), projectID)
	if err != nil {
		slog.Error("list items failed", slog.String("project_id", projectID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	out := make([]ItemRow, 0, len(list))
	for _, b := range list {
		out = append(out, toItemRow(b))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// ProjectSchedule handles GET /api/projects/{id}/schedule.
func (h *Handler) ProjectSchedule(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	payload, err := h.schedule.ProjectTimeline(r.Context(), projectID, h.now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorBody("project not found"))
			return
		}
		slog.Error("project schedule failed", slog.String("project_id", projectID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// GlobalSchedule handles GET /api/schedule.
func (h *Handler) GlobalSchedule(w http.ResponseWriter, r *http.Request) {
	payload, err := h.schedule.GlobalTimeline(r.Context(), h.now().UTC())
	if err != nil {
		slog.Error("global schedule failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// ScheduleMutation handles POST /api/projects/{id}/schedule. It accepts
// either a form-encoded body (the Gantt client's native format) or a flat
// JSON object with the same keys.
func (h *Handler) ScheduleMutation(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	form, err := mutationForm(r)
	if err != nil {
		writeJSON(w, http.StatusOK, feed.Error("malformed request body"))
		return
	}
	m, err := feed.ParseMutation(form)
	if err != nil {
		writeJSON(w, http.StatusOK, feed.Error(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, h.schedule.ApplyMutation(r.Context(), m, projectID))
}

func mutationForm(r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		return flattenJSON(body), nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

// flattenJSON turns a flat JSON object into form values so both body
// formats go through the same mutation parser.
func flattenJSON(body map[string]any) url.Values {
	form := url.Values{}
	for k, v := range body {
		switch v := v.(type) {
		case string:
			form.Set(k, v)
		case float64:
			form.Set(k, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			form.Set(k, strconv.FormatBool(v))
		case nil:
			// absent, not empty
		}
	}
	return form
}
