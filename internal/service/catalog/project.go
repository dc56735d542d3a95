package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// CreateProject adds an ACTIVE project (admin only).
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	project, err := s.catalog.CreateProject(ctx, &domain.Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		HourlyRate:  input.HourlyRate,
		Status:      domain.ProjectStatusActive,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", project.ID.String()),
		slog.String("name", project.Name),
	)
	return project, nil
}

// UpdateProjectStatus moves a project to another commercial status
// (admin only). Time can only be logged against ACTIVE projects.
func (s *Service) UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, status domain.ProjectStatus) (*domain.Project, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be ACTIVE, COMPLETED, ON_HOLD or ARCHIVED")
	}

	project, err := s.catalog.UpdateProjectStatus(ctx, projectID, status)
	if err != nil {
		return nil, fmt.Errorf("update project status: %w", err)
	}

	s.log.InfoContext(ctx, "project status changed",
		slog.String("project_id", projectID.String()),
		slog.String("status", string(status)),
	)
	return project, nil
}

// AssignWorker lets a user log time against a project (admin only).
// Assigning an already assigned user succeeds without change.
func (s *Service) AssignWorker(ctx context.Context, projectID, userID uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrUnauthorized
	}

	if _, err := s.catalog.GetProject(ctx, projectID); err != nil {
		return fmt.Errorf("get project: %w", err)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !user.IsActive() {
		return fmt.Errorf("user %s is inactive: %w", userID, domain.ErrInvalidState)
	}

	if err := s.catalog.Assign(ctx, projectID, userID); err != nil {
		return fmt.Errorf("assign worker: %w", err)
	}

	s.log.InfoContext(ctx, "worker assigned",
		slog.String("project_id", projectID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
