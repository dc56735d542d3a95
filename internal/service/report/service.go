package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reportRepo interface {
	List(ctx context.Context, f domain.ReportFilter, loc *time.Location) ([]domain.ReportRow, error)
}

type optionsRepo interface {
	ListProjectOptions(ctx context.Context) ([]domain.CatalogProject, error)
	ListTaskOptions(ctx context.Context) ([]domain.CatalogTask, error)
}

type userRepo interface {
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.CatalogUser, error)
}

type recorder interface {
	ReportQuery(operation string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements admin-only reporting over historical entries.
type Service struct {
	reports reportRepo
	options optionsRepo
	users   userRepo
	metrics recorder
	loc     *time.Location
	log     *slog.Logger
}

// NewService creates a new report service. loc resolves the calendar dates
// of a filter into instants.
func NewService(
	log *slog.Logger,
	reports reportRepo,
	options optionsRepo,
	users userRepo,
	metrics recorder,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		reports: reports,
		options: options,
		users:   users,
		metrics: metrics,
		loc:     loc,
		log:     log.With("service", "report"),
	}
}
