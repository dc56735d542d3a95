package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an ACTIVE user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      role,
		Status:    domain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), string(user.Status), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedProject creates an ACTIVE project. A nil rate leaves hourly_rate NULL.
func SeedProject(t *testing.T, pool *pgxpool.Pool, rate *decimal.Decimal) domain.Project {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	client := "Client " + suffix
	project := domain.Project{
		ID:         uuid.New(),
		Name:       "Project " + suffix,
		HourlyRate: rate,
		Status:     domain.ProjectStatusActive,
		ClientName: &client,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var rateText *string
	if rate != nil {
		s := rate.String()
		rateText = &s
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, name, hourly_rate, status, client_name, created_at, updated_at)
		 VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)`,
		project.ID, project.Name, rateText, string(project.Status), project.ClientName, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return project
}

// SeedTask creates a task under projectID.
func SeedTask(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, active bool) domain.Task {
	t.Helper()

	task := domain.Task{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      "Task " + uniqueSuffix(),
		IsActive:  active,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, project_id, name, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		task.ID, task.ProjectID, task.Name, task.IsActive, task.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}

// SeedAssignment links a worker to a project.
func SeedAssignment(t *testing.T, pool *pgxpool.Pool, projectID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO project_assignments (project_id, user_id) VALUES ($1, $2)`,
		projectID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssignment: %v", err)
	}
}

// SeedCompletedEntry inserts a COMPLETED entry spanning [start, end).
func SeedCompletedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, task domain.Task, start, end time.Time) domain.TimeEntry {
	t.Helper()

	start = start.UTC().Truncate(time.Microsecond)
	end = end.UTC().Truncate(time.Microsecond)
	duration := domain.DurationMinutes(start, end)

	entry := domain.TimeEntry{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: task.ProjectID,
		TaskID:    task.ID,
		StartTime: start,
		EndTime:   &end,
		Duration:  &duration,
		Status:    domain.EntryStatusCompleted,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO time_entries (id, user_id, project_id, task_id, start_time, end_time, duration, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.ProjectID, entry.TaskID, entry.StartTime, entry.EndTime, entry.Duration, string(entry.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompletedEntry: %v", err)
	}

	return entry
}
