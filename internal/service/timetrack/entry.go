package timetrack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

// Start opens a new IN_PROGRESS entry for the caller.
// Returns domain.ErrConflict if the caller already has a running entry. The
// check runs inside the transaction and the partial unique index on
// time_entries rejects a concurrent second insert, which is also reported as
// domain.ErrConflict.
func (s *Service) Start(ctx context.Context, input StartInput) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.TimeEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		active, err := s.entries.HasActive(txCtx, userID)
		if err != nil {
			return fmt.Errorf("check active entry: %w", err)
		}
		if active {
			return fmt.Errorf("user %s already has an active entry: %w", userID, domain.ErrConflict)
		}

		if err := s.checkTarget(txCtx, userID, input.ProjectID, input.TaskID); err != nil {
			return err
		}

		entry := &domain.TimeEntry{
			ID:        uuid.New(),
			UserID:    userID,
			ProjectID: input.ProjectID,
			TaskID:    input.TaskID,
			StartTime: s.now(),
			Status:    domain.EntryStatusInProgress,
			Notes:     input.Notes,
		}

		created, err = s.entries.Create(txCtx, entry)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return fmt.Errorf("user %s already has an active entry: %w", userID, domain.ErrConflict)
			}
			return fmt.Errorf("create entry: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.metrics.StartConflict()
		}
		return nil, fmt.Errorf("start entry: %w", err)
	}

	s.metrics.EntryStarted()
	s.log.InfoContext(ctx, "entry started",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.String("project_id", created.ProjectID.String()),
	)

	return created, nil
}

// checkTarget verifies that the task exists, belongs to the project and that
// the caller may log time against it.
func (s *Service) checkTarget(ctx context.Context, userID, projectID, taskID uuid.UUID) error {
	project, err := s.catalog.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	task, err := s.catalog.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task.ProjectID != project.ID {
		return fmt.Errorf("task %s does not belong to project %s: %w", taskID, projectID, domain.ErrNotFound)
	}

	assigned, err := s.catalog.IsAssigned(ctx, projectID, userID)
	if err != nil {
		return fmt.Errorf("check assignment: %w", err)
	}
	if !assigned {
		return fmt.Errorf("user %s is not assigned to project %s: %w", userID, projectID, domain.ErrUnauthorized)
	}

	if !project.IsActive() {
		return fmt.Errorf("project %s is %s: %w", projectID, project.Status, domain.ErrInvalidState)
	}
	if !task.IsActive {
		return fmt.Errorf("task %s is inactive: %w", taskID, domain.ErrInvalidState)
	}

	return nil
}

// Stop completes the caller's running entry, recording end time and the
// elapsed minutes rounded to the nearest integer.
func (s *Service) Stop(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var stopped *domain.TimeEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.lockOwned(txCtx, userID, entryID)
		if err != nil {
			return err
		}
		if !entry.Status.CanTransitionTo(domain.EntryStatusCompleted) {
			return fmt.Errorf("entry %s already stopped: %w", entryID, domain.ErrInvalidState)
		}

		now := s.now()
		stopped, err = s.entries.Complete(txCtx, entryID, now, domain.DurationMinutes(entry.StartTime, now))
		if err != nil {
			return fmt.Errorf("complete entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stop entry: %w", err)
	}

	minutes := 0
	if stopped.Duration != nil {
		minutes = *stopped.Duration
	}
	s.metrics.EntryStopped(minutes)
	s.log.InfoContext(ctx, "entry stopped",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
		slog.Int("duration_minutes", minutes),
	)

	return stopped, nil
}

// AdjustStartTime moves the start of the caller's running entry.
// A start in the future is rejected with domain.ErrFutureTime. No lower
// bound is enforced.
func (s *Service) AdjustStartTime(ctx context.Context, input AdjustStartInput) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var adjusted *domain.TimeEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.lockOwned(txCtx, userID, input.EntryID)
		if err != nil {
			return err
		}
		if entry.Status != domain.EntryStatusInProgress {
			return fmt.Errorf("entry %s is %s: %w", input.EntryID, entry.Status, domain.ErrInvalidState)
		}
		if input.StartTime.After(s.now()) {
			return fmt.Errorf("start time %s: %w", input.StartTime.Format(time.RFC3339), domain.ErrFutureTime)
		}

		adjusted, err = s.entries.UpdateStartTime(txCtx, input.EntryID, input.StartTime)
		if err != nil {
			return fmt.Errorf("update start time: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adjust start time: %w", err)
	}

	s.log.InfoContext(ctx, "entry start adjusted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", input.EntryID.String()),
	)

	return adjusted, nil
}

// lockOwned loads the entry under a row lock and checks ownership.
func (s *Service) lockOwned(ctx context.Context, userID, entryID uuid.UUID) (*domain.TimeEntry, error) {
	entry, err := s.entries.GetByIDForUpdate(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrUnauthorized)
	}
	return entry, nil
}

// GetActiveEntry returns the caller's running entry with project and task
// names, or nil if none.
func (s *Service) GetActiveEntry(ctx context.Context) (*domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns the caller's entries started within the range,
// newest first. An empty range means today.
func (s *Service) ListEntries(ctx context.Context, r domain.RangeFilter) ([]domain.TimeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if r == "" {
		r = domain.RangeToday
	}
	if !r.IsValid() {
		return nil, domain.NewValidationError("range", "must be today, week or month")
	}

	since := domain.RangeStart(r, s.now())

	entries, err := s.entries.ListByUser(ctx, userID, since, nil)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListAssignedProjects returns the ACTIVE projects the caller may log time
// against, each carrying only its active tasks.
func (s *Service) ListAssignedProjects(ctx context.Context) ([]domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projects, err := s.catalog.ListAssignedProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list assigned projects: %w", err)
	}
	return projects, nil
}
