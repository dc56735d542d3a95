package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

type catalogRepo interface {
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error)
	UpdateProjectStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) (*domain.Project, error)
	CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error)
	ToggleTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Assign(ctx context.Context, projectID, userID uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service maintains the projects, tasks and assignments that time entries
// reference. Every operation is admin only.
type Service struct {
	log     *slog.Logger
	catalog catalogRepo
	users   userRepo
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, catalog catalogRepo, users userRepo) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		catalog: catalog,
		users:   users,
	}
}
