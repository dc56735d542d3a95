package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/internal/service/catalog"
)

// catalogService defines the admin catalog operations used by AdminHandler.
type catalogService interface {
	CreateProject(ctx context.Context, input catalog.CreateProjectInput) (*domain.Project, error)
	UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, status domain.ProjectStatus) (*domain.Project, error)
	CreateTask(ctx context.Context, input catalog.CreateTaskInput) (*domain.Task, error)
	ToggleTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	AssignWorker(ctx context.Context, projectID, userID uuid.UUID) error
}

// AdminHandler serves project, task and assignment maintenance.
type AdminHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc catalogService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type createProjectRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	HourlyRate  *decimal.Decimal `json:"hourlyRate"`
	ClientName  *string          `json:"clientName"`
	ClientEmail *string          `json:"clientEmail"`
}

type projectStatusRequest struct {
	Status string `json:"status"`
}

type createTaskRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateProject adds a project.
// POST /admin/projects
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	project, err := h.svc.CreateProject(r.Context(), catalog.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(project))
}

// UpdateProjectStatus changes a project's status.
// PATCH /admin/projects/{id}/status
func (h *AdminHandler) UpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.log, "id")
	if !ok {
		return
	}

	var req projectStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	project, err := h.svc.UpdateProjectStatus(r.Context(), id, domain.ProjectStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(project))
}

// CreateTask adds a task to a project.
// POST /admin/projects/{id}/tasks
func (h *AdminHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.log, "id")
	if !ok {
		return
	}

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	task, err := h.svc.CreateTask(r.Context(), catalog.CreateTaskInput{
		ProjectID:   id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

// ToggleTask flips a task's active flag.
// POST /admin/tasks/{id}/toggle
func (h *AdminHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.log, "id")
	if !ok {
		return
	}

	task, err := h.svc.ToggleTask(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// AssignWorker grants a user access to a project.
// PUT /admin/projects/{id}/assignments/{userID}
func (h *AdminHandler) AssignWorker(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parsePathID(w, r, h.log, "id")
	if !ok {
		return
	}
	userID, ok := parsePathID(w, r, h.log, "userID")
	if !ok {
		return
	}

	if err := h.svc.AssignWorker(r.Context(), projectID, userID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
