// Package user implements read access to identity references using PostgreSQL.
// Users are owned by the identity provider; this package never writes them.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// Repo provides user lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, role, status, created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const listByRoleSQL = `
SELECT id, name, email
FROM users
WHERE role = $1
ORDER BY name`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		u      domain.User
		role   string
		status string
	)
	err := querier.QueryRow(ctx, getByIDSQL, id).
		Scan(&u.ID, &u.Email, &u.Name, &role, &status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u.Role = domain.UserRole(role)
	u.Status = domain.UserStatus(status)

	return &u, nil
}

// ListByRole returns id, name and email of users holding role, ordered by name.
func (r *Repo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.CatalogUser, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByRoleSQL, string(role))
	if err != nil {
		return nil, fmt.Errorf("list users by role %s: %w", role, err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CatalogUser, error) {
		var u domain.CatalogUser
		err := row.Scan(&u.ID, &u.Name, &u.Email)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("list users by role %s: %w", role, err)
	}
	return users, nil
}
