// Package catalog implements project, task and assignment persistence using PostgreSQL.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

// hourly_rate travels as text so decimal.Decimal keeps its exact scale.
const projectColumns = `p.id, p.name, p.description, p.hourly_rate::text, p.status, p.client_name, p.client_email, p.created_at, p.updated_at`

const taskColumns = `id, project_id, name, description, is_active, created_at`

const getProjectSQL = `
SELECT ` + projectColumns + `
FROM projects p
WHERE p.id = $1`

const getTaskSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1`

const isAssignedSQL = `
SELECT EXISTS(SELECT 1 FROM project_assignments WHERE project_id = $1 AND user_id = $2)`

const listAssignedProjectsSQL = `
SELECT ` + projectColumns + `
FROM projects p
JOIN project_assignments pa ON pa.project_id = p.id
WHERE pa.user_id = $1 AND p.status = 'ACTIVE'
ORDER BY p.name`

const listActiveTasksByProjectsSQL = `
SELECT ` + taskColumns + `
FROM tasks
WHERE project_id = ANY($1) AND is_active
ORDER BY created_at DESC`

const listProjectOptionsSQL = `
SELECT id, name FROM projects ORDER BY name`

const listTaskOptionsSQL = `
SELECT id, name, project_id FROM tasks ORDER BY name`

const createProjectSQL = `
INSERT INTO projects (id, name, description, hourly_rate, status, client_name, client_email, created_at, updated_at)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $8)
RETURNING ` + projectColumnsBare

// RETURNING cannot use the p. alias.
const projectColumnsBare = `id, name, description, hourly_rate::text, status, client_name, client_email, created_at, updated_at`

const updateProjectStatusSQL = `
UPDATE projects SET status = $2, updated_at = $3
WHERE id = $1
RETURNING ` + projectColumnsBare

const createTaskSQL = `
INSERT INTO tasks (id, project_id, name, description, is_active, created_at)
VALUES ($1, $2, $3, $4, true, $5)
RETURNING ` + taskColumns

const toggleTaskSQL = `
UPDATE tasks SET is_active = NOT is_active
WHERE id = $1
RETURNING ` + taskColumns

const assignSQL = `
INSERT INTO project_assignments (project_id, user_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (project_id, user_id) DO NOTHING`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetProject returns a project by primary key.
func (r *Repo) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(querier.QueryRow(ctx, getProjectSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// GetTask returns a task by primary key.
func (r *Repo) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	task, err := scanTask(querier.QueryRow(ctx, getTaskSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return task, nil
}

// IsAssigned reports whether userID may log time against projectID.
func (r *Repo) IsAssigned(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var ok bool
	if err := querier.QueryRow(ctx, isAssignedSQL, projectID, userID).Scan(&ok); err != nil {
		return false, postgres.MapError(err, "project", projectID)
	}
	return ok, nil
}

// ListAssignedProjects returns the ACTIVE projects a user is assigned to,
// each with its active tasks ordered newest first.
func (r *Repo) ListAssignedProjects(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAssignedProjectsSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Project, error) {
		p, err := scanProject(row)
		if err != nil {
			return domain.Project{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	if len(projects) == 0 {
		return []domain.Project{}, nil
	}

	ids := make([]uuid.UUID, len(projects))
	index := make(map[uuid.UUID]int, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
		index[p.ID] = i
		projects[i].Tasks = []domain.Task{}
	}

	taskRows, err := querier.Query(ctx, listActiveTasksByProjectsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}
	tasks, err := pgx.CollectRows(taskRows, func(row pgx.CollectableRow) (domain.Task, error) {
		t, err := scanTask(row)
		if err != nil {
			return domain.Task{}, err
		}
		return *t, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	for _, t := range tasks {
		i := index[t.ProjectID]
		projects[i].Tasks = append(projects[i].Tasks, t)
	}

	return projects, nil
}

// ListProjectOptions returns every project as an id+name pair ordered by name.
func (r *Repo) ListProjectOptions(ctx context.Context) ([]domain.CatalogProject, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listProjectOptionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list project options: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CatalogProject, error) {
		var p domain.CatalogProject
		err := row.Scan(&p.ID, &p.Name)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("list project options: %w", err)
	}
	return out, nil
}

// ListTaskOptions returns every task as an id+name+project triple ordered by name.
func (r *Repo) ListTaskOptions(ctx context.Context) ([]domain.CatalogTask, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTaskOptionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list task options: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CatalogTask, error) {
		var t domain.CatalogTask
		err := row.Scan(&t.ID, &t.Name, &t.ProjectID)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("list task options: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateProject inserts a project and returns the persisted row.
func (r *Repo) CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanProject(querier.QueryRow(ctx, createProjectSQL,
		p.ID,
		p.Name,
		p.Description,
		decimalToText(p.HourlyRate),
		string(p.Status),
		p.ClientName,
		p.ClientEmail,
		now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return created, nil
}

// UpdateProjectStatus changes the commercial status of a project.
func (r *Repo) UpdateProjectStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	p, err := scanProject(querier.QueryRow(ctx, updateProjectStatusSQL, id, string(status), now))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// CreateTask inserts an active task. An unknown project yields domain.ErrNotFound.
func (r *Repo) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanTask(querier.QueryRow(ctx, createTaskSQL, t.ID, t.ProjectID, t.Name, t.Description, now))
	if err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return created, nil
}

// ToggleTask flips the active flag of a task.
func (r *Repo) ToggleTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(querier.QueryRow(ctx, toggleTaskSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// Assign links a user to a project. Assigning twice is a no-op.
func (r *Repo) Assign(ctx context.Context, projectID, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, assignSQL, projectID, userID, now); err != nil {
		return postgres.MapError(err, "project_assignment", projectID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p      domain.Project
		rate   *string
		status string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &rate, &status, &p.ClientName, &p.ClientEmail, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Status = domain.ProjectStatus(status)

	hourly, err := textToDecimal(rate)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", p.ID, err)
	}
	p.HourlyRate = hourly

	return &p, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.IsActive, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func decimalToText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func textToDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("parse hourly rate %q: %w", *s, err)
	}
	return &d, nil
}
