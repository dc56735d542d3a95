package report

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

// ParseFilter reads startDate, endDate (YYYY-MM-DD), projectId,
// userId, taskId and status from the query string. Malformed values are
// collected into a single validation error.
func ParseFilter(q url.Values) (domain.ReportFilter, error) {
	var (
		f    domain.ReportFilter
		errs []domain.FieldError
	)

	parseDate := func(key string) *time.Time {
		v := q.Get(key)
		if v == "" {
			return nil
		}
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be YYYY-MM-DD"})
			return nil
		}
		return &t
	}
	parseID := func(key string) *uuid.UUID {
		v := q.Get(key)
		if v == "" {
			return nil
		}
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: key, Message: "must be a UUID"})
			return nil
		}
		return &id
	}

	f.StartDate = parseDate("startDate")
	f.EndDate = parseDate("endDate")
	f.ProjectID = parseID("projectId")
	f.UserID = parseID("userId")
	f.TaskID = parseID("taskId")
	if v := q.Get("status"); v != "" {
		status := domain.EntryStatus(v)
		f.Status = &status
	}

	if len(errs) > 0 {
		return domain.ReportFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}
