// Package timeentry implements TimeEntry persistence using PostgreSQL.
// Lifecycle writes are conditional on status = 'IN_PROGRESS' and the
// partial unique index time_entries_one_active_per_user guards inserts.
package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ActiveEntryConstraint is the partial unique index allowing one running entry per user.
const ActiveEntryConstraint = "time_entries_one_active_per_user"

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new time entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const entryColumns = `id, user_id, project_id, task_id, start_time, end_time, duration, status, notes, created_at, updated_at`

const namedColumns = `e.id, e.user_id, e.project_id, e.task_id, e.start_time, e.end_time, e.duration, e.status, e.notes, e.created_at, e.updated_at, p.name, t.name`

const createSQL = `
INSERT INTO time_entries (id, user_id, project_id, task_id, start_time, status, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 'IN_PROGRESS', $6, $7, $7)
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getActiveSQL = `
SELECT ` + namedColumns + `
FROM time_entries e
JOIN projects p ON p.id = e.project_id
JOIN tasks t ON t.id = e.task_id
WHERE e.user_id = $1 AND e.status = 'IN_PROGRESS'`

const existsActiveSQL = `
SELECT EXISTS(SELECT 1 FROM time_entries WHERE user_id = $1 AND status = 'IN_PROGRESS')`

const completeSQL = `
UPDATE time_entries
SET status = 'COMPLETED', end_time = $2, duration = $3, updated_at = $4
WHERE id = $1 AND status = 'IN_PROGRESS'
RETURNING ` + entryColumns

const updateStartTimeSQL = `
UPDATE time_entries
SET start_time = $2, updated_at = $3
WHERE id = $1 AND status = 'IN_PROGRESS'
RETURNING ` + entryColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByIDForUpdate returns an entry and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(querier.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", id)
	}
	return entry, nil
}

// GetActive returns the IN_PROGRESS entry of a user with project and task names.
// Returns domain.ErrNotFound if the user has no running entry.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanNamedEntry(querier.QueryRow(ctx, getActiveSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", uuid.Nil)
	}
	return entry, nil
}

// HasActive reports whether the user currently has a running entry.
func (r *Repo) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsActiveSQL, userID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "user", userID)
	}
	return exists, nil
}

// ListByUser returns a user's entries with start_time >= since (and < until
// when until is non-nil), ordered by start_time DESC.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, since time.Time, until *time.Time) ([]domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{
		squirrel.Eq{"e.user_id": userID.String()},
		squirrel.GtOrEq{"e.start_time": since},
	}
	if until != nil {
		where = append(where, squirrel.Lt{"e.start_time": *until})
	}

	sql, args, err := postgres.Builder().
		Select(namedColumns).
		From("time_entries e").
		Join("projects p ON p.id = e.project_id").
		Join("tasks t ON t.id = e.task_id").
		Where(where).
		OrderBy("e.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		entry, err := scanNamedEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new IN_PROGRESS entry. A second running entry for the same
// user violates ActiveEntryConstraint and yields domain.ErrConflict; other
// unique violations stay domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanEntry(querier.QueryRow(ctx, createSQL,
		entry.ID,
		entry.UserID,
		entry.ProjectID,
		entry.TaskID,
		entry.StartTime.UTC().Truncate(time.Microsecond),
		entry.Notes,
		now,
	))
	if err != nil {
		if postgres.IsConstraint(err, ActiveEntryConstraint) {
			return nil, fmt.Errorf("user %s has a running entry: %w", entry.UserID, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "time_entry", entry.ID)
	}
	return created, nil
}

// Complete marks a running entry COMPLETED with the given end time and duration.
// Returns domain.ErrNotFound if the entry does not exist or is no longer IN_PROGRESS.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID, endTime time.Time, duration int) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	endTime = endTime.UTC().Truncate(time.Microsecond)

	entry, err := scanEntry(querier.QueryRow(ctx, completeSQL, id, endTime, duration, endTime))
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", id)
	}
	return entry, nil
}

// UpdateStartTime moves the start of a running entry.
// Returns domain.ErrNotFound if the entry does not exist or is no longer IN_PROGRESS.
func (r *Repo) UpdateStartTime(ctx context.Context, id uuid.UUID, startTime time.Time) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	entry, err := scanEntry(querier.QueryRow(ctx, updateStartTimeSQL, id, startTime.UTC().Truncate(time.Microsecond), now))
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", id)
	}
	return entry, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var (
		e      domain.TimeEntry
		status string
	)
	if err := row.Scan(
		&e.ID, &e.UserID, &e.ProjectID, &e.TaskID,
		&e.StartTime, &e.EndTime, &e.Duration, &status, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Status = domain.EntryStatus(status)
	return &e, nil
}

func scanNamedEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var (
		e      domain.TimeEntry
		status string
	)
	if err := row.Scan(
		&e.ID, &e.UserID, &e.ProjectID, &e.TaskID,
		&e.StartTime, &e.EndTime, &e.Duration, &status, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt, &e.ProjectName, &e.TaskName,
	); err != nil {
		return nil, err
	}
	e.Status = domain.EntryStatus(status)
	return &e, nil
}
