package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/service/timetrack"
)

// entryService defines the time entry operations used by EntryHandler.
type entryService interface {
	Start(ctx context.Context, input timetrack.StartInput) (*domain.TimeEntry, error)
	Stop(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
	AdjustStartTime(ctx context.Context, input timetrack.AdjustStartInput) (*domain.TimeEntry, error)
	GetActiveEntry(ctx context.Context) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context, r domain.RangeFilter) ([]domain.TimeEntry, error)
	ListAssignedProjects(ctx context.Context) ([]domain.Project, error)
}

// EntryHandler serves the worker's time tracking endpoints.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type startRequest struct {
	ProjectID uuid.UUID `json:"projectId"`
	TaskID    uuid.UUID `json:"taskId"`
	Notes     *string   `json:"notes"`
}

type adjustStartRequest struct {
	StartTime time.Time `json:"startTime"`
}

// Start opens a running entry.
// POST /entries
func (h *EntryHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Start(r.Context(), timetrack.StartInput{
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Stop completes a running entry.
// POST /entries/{id}/stop
func (h *EntryHandler) Stop(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.log, "id")
	if !ok {
		return
	}

	entry, err := h.svc.Stop(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// AdjustStartTime moves the start of a running entry.
// PATCH /entries/{id}/start-time
func (h *EntryHandler) AdjustStartTime(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.log, "id")
	if !ok {
		return
	}

	var req adjustStartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.AdjustStartTime(r.Context(), timetrack.AdjustStartInput{
		EntryID:   id,
		StartTime: req.StartTime,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Active returns the caller's running entry, or null.
// GET /entries/active
func (h *EntryHandler) Active(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetActiveEntry(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if entry == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List returns the caller's entries in a calendar range.
// GET /entries?range=today|week|month
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context(), domain.RangeFilter(r.URL.Query().Get("range")))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// AssignedProjects returns the projects the caller may log time against.
// GET /projects/assigned
func (h *EntryHandler) AssignedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListAssignedProjects(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := make([]projectResponse, len(projects))
	for i := range projects {
		resp[i] = toProjectResponse(&projects[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func parsePathID(w http.ResponseWriter, r *http.Request, log *slog.Logger, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeServiceError(w, r, log, domain.NewValidationError(name, "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
