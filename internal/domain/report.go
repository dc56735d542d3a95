package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportFilter narrows the historical entries a report covers.
// Nil fields impose no restriction; set fields are combined with AND.
// StartDate and EndDate are calendar dates: only year, month and day are
// used, and EndDate includes its whole day.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	ProjectID *uuid.UUID
	UserID    *uuid.UUID
	TaskID    *uuid.UUID
	Status    *EntryStatus
}

// Validate rejects filters that cannot match anything meaningful.
func (f ReportFilter) Validate() error {
	var errs []FieldError

	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be IN_PROGRESS, COMPLETED or CANCELLED"})
	}

	if f.StartDate != nil && f.EndDate != nil && dateOnly(*f.StartDate).After(dateOnly(*f.EndDate)) {
		errs = append(errs, FieldError{Field: "start_date", Message: "must not be after end_date"})
	}

	for _, id := range []struct {
		field string
		val   *uuid.UUID
	}{{"project_id", f.ProjectID}, {"user_id", f.UserID}, {"task_id", f.TaskID}} {
		if id.val != nil && *id.val == uuid.Nil {
			errs = append(errs, FieldError{Field: id.field, Message: "must not be empty"})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Bounds converts the calendar dates into a half-open [from, to) interval
// of instants in loc. A nil bound means unbounded on that side.
func (f ReportFilter) Bounds(loc *time.Location) (from, to *time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	if f.StartDate != nil {
		y, m, d := f.StartDate.Date()
		t := time.Date(y, m, d, 0, 0, 0, 0, loc)
		from = &t
	}
	if f.EndDate != nil {
		y, m, d := f.EndDate.Date()
		t := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
		to = &t
	}
	return from, to
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ReportUser is the denormalized worker shown on a report row.
type ReportUser struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// DisplayName returns the name when set, falling back to the email.
func (u ReportUser) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// ReportProject is the denormalized project shown on a report row.
type ReportProject struct {
	ID         uuid.UUID
	Name       string
	ClientName *string
	HourlyRate *decimal.Decimal
}

// ReportTask is the denormalized task shown on a report row.
type ReportTask struct {
	ID   uuid.UUID
	Name string
}

// ReportRow is one time entry enriched for aggregation and export.
// It is never persisted.
type ReportRow struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   *time.Time
	Duration  *int
	Status    EntryStatus
	Notes     *string
	User      ReportUser
	Project   ReportProject
	Task      ReportTask
}

// Summary aggregates a filtered set of report rows.
type Summary struct {
	TotalEntries int
	TotalMinutes int
	TotalHours   float64
	ByUser       []UserSummary
	ByProject    []ProjectSummary
}

// UserSummary totals the rows of a single worker.
type UserSummary struct {
	User         ReportUser
	TotalMinutes int
	EntriesCount int
}

// ProjectSummary totals the rows of a single project.
type ProjectSummary struct {
	Project       ReportProject
	TotalMinutes  int
	EntriesCount  int
	EstimatedCost decimal.Decimal
}

// CatalogProject is a project option for report filter controls.
type CatalogProject struct {
	ID   uuid.UUID
	Name string
}

// CatalogUser is a worker option for report filter controls.
type CatalogUser struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// CatalogTask is a task option; ProjectID lets callers narrow the list
// once a project is chosen.
type CatalogTask struct {
	ID        uuid.UUID
	Name      string
	ProjectID uuid.UUID
}

// FilterCatalog holds the lookup lists used to populate report filters.
type FilterCatalog struct {
	Projects []CatalogProject
	Users    []CatalogUser
	Tasks    []CatalogTask
}
