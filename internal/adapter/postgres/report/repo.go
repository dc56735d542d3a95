// Package report implements the filtered report query over time entries.
// The WHERE clause is assembled with squirrel from the optional filter fields.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// Repo runs report queries. It accepts any Querier so tests can use pgxmock.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var rowColumns = []string{
	"e.id", "e.start_time", "e.end_time", "e.duration", "e.status", "e.notes",
	"u.id", "u.name", "u.email",
	"p.id", "p.name", "p.client_name", "p.hourly_rate::text",
	"t.id", "t.name",
}

// List returns the entries matching f with denormalized user, project and
// task fields, ordered by start_time DESC. Calendar dates in f are resolved
// to instants in loc.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter, loc *time.Location) ([]domain.ReportRow, error) {
	sql, args, err := buildListQuery(f, loc)
	if err != nil {
		return nil, fmt.Errorf("build report query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()

	out := []domain.ReportRow{}
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}

	return out, nil
}

// buildListQuery translates the filter into SQL. Conditions are appended in
// a fixed order: start, end, project, user, task, status. UUIDs are bound in
// text form, matching what squirrel does with driver.Valuer args.
func buildListQuery(f domain.ReportFilter, loc *time.Location) (string, []any, error) {
	q := postgres.Builder().
		Select(rowColumns...).
		From("time_entries e").
		Join("users u ON u.id = e.user_id").
		Join("projects p ON p.id = e.project_id").
		Join("tasks t ON t.id = e.task_id").
		OrderBy("e.start_time DESC")

	from, to := f.Bounds(loc)
	if from != nil {
		q = q.Where(squirrel.GtOrEq{"e.start_time": *from})
	}
	if to != nil {
		q = q.Where(squirrel.Lt{"e.start_time": *to})
	}
	if f.ProjectID != nil {
		q = q.Where(squirrel.Eq{"e.project_id": f.ProjectID.String()})
	}
	if f.UserID != nil {
		q = q.Where(squirrel.Eq{"e.user_id": f.UserID.String()})
	}
	if f.TaskID != nil {
		q = q.Where(squirrel.Eq{"e.task_id": f.TaskID.String()})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"e.status": string(*f.Status)})
	}

	return q.ToSql()
}

func scanRow(rows pgx.Rows) (domain.ReportRow, error) {
	var (
		r      domain.ReportRow
		status string
		rate   *string
	)
	if err := rows.Scan(
		&r.ID, &r.StartTime, &r.EndTime, &r.Duration, &status, &r.Notes,
		&r.User.ID, &r.User.Name, &r.User.Email,
		&r.Project.ID, &r.Project.Name, &r.Project.ClientName, &rate,
		&r.Task.ID, &r.Task.Name,
	); err != nil {
		return domain.ReportRow{}, err
	}
	r.Status = domain.EntryStatus(status)

	if rate != nil {
		d, err := decimal.NewFromString(*rate)
		if err != nil {
			return domain.ReportRow{}, fmt.Errorf("project %s: parse hourly rate %q: %w", r.Project.ID, *rate, err)
		}
		r.Project.HourlyRate = &d
	}

	return r, nil
}
