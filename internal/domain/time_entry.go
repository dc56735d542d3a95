package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TimeEntry is one span of worked time against a task.
//
// EndTime and Duration are set if and only if Status is COMPLETED.
// Duration is expressed in whole minutes.
type TimeEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProjectID uuid.UUID
	TaskID    uuid.UUID
	StartTime time.Time
	EndTime   *time.Time
	Duration  *int
	Status    EntryStatus
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Denormalized for display; empty when the query did not join them.
	ProjectName string
	TaskName    string
}

// IsActive returns true while elapsed time is still being measured.
func (e *TimeEntry) IsActive() bool {
	return e.Status == EntryStatusInProgress
}

// DurationMinutes rounds the span between start and end to the nearest
// whole minute (half rounds up). Negative spans yield 0.
func DurationMinutes(start, end time.Time) int {
	elapsed := end.Sub(start)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Floor(elapsed.Minutes() + 0.5))
}
