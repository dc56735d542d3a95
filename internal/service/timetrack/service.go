package timetrack

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, since time.Time, until *time.Time) ([]domain.TimeEntry, error)
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	Complete(ctx context.Context, id uuid.UUID, endTime time.Time, duration int) (*domain.TimeEntry, error)
	UpdateStartTime(ctx context.Context, id uuid.UUID, startTime time.Time) (*domain.TimeEntry, error)
}

type catalogRepo interface {
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	IsAssigned(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	ListAssignedProjects(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	EntryStarted()
	EntryStopped(minutes int)
	StartConflict()
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the time entry lifecycle.
type Service struct {
	entries entryRepo
	catalog catalogRepo
	tx      txManager
	metrics recorder
	clock   clock
	loc     *time.Location
	log     *slog.Logger
}

// NewService creates a new timetrack service. loc is the timezone used for
// calendar ranges (today, week, month).
func NewService(
	log *slog.Logger,
	entries entryRepo,
	catalog catalogRepo,
	tx txManager,
	metrics recorder,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		entries: entries,
		catalog: catalog,
		tx:      tx,
		metrics: metrics,
		clock:   systemClock{},
		loc:     loc,
		log:     log.With("service", "timetrack"),
	}
}

// now returns the current instant in the configured location.
func (s *Service) now() time.Time {
	return s.clock.Now().In(s.loc)
}
