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

// CreateTask adds an active task to an existing project (admin only).
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetProject(ctx, input.ProjectID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	task, err := s.catalog.CreateTask(ctx, &domain.Task{
		ID:          uuid.New(),
		ProjectID:   input.ProjectID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		IsActive:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("project_id", input.ProjectID.String()),
		slog.String("task_id", task.ID.String()),
	)
	return task, nil
}

// ToggleTask flips whether time may be logged against a task (admin only).
func (s *Service) ToggleTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrUnauthorized
	}

	task, err := s.catalog.ToggleTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}

	s.log.InfoContext(ctx, "task toggled",
		slog.String("task_id", taskID.String()),
		slog.Bool("is_active", task.IsActive),
	)
	return task, nil
}
