package catalog

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name        string
	Description *string
	HourlyRate  *decimal.Decimal
	ClientName  *string
	ClientEmail *string
}

// Validate checks all fields and collects all errors.
func (i *CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	errs = appendNameErrors(errs, i.Name)
	errs = appendDescriptionErrors(errs, i.Description)

	if i.HourlyRate != nil && i.HourlyRate.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "hourly_rate", Message: "must not be negative"})
	}
	if i.ClientEmail != nil && *i.ClientEmail != "" {
		if _, err := mail.ParseAddress(*i.ClientEmail); err != nil {
			errs = append(errs, domain.FieldError{Field: "client_email", Message: "invalid email"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateTaskInput holds the parameters for adding a task to a project.
type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i *CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = appendNameErrors(errs, i.Name)
	errs = appendDescriptionErrors(errs, i.Description)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, name string) []domain.FieldError {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func appendDescriptionErrors(errs []domain.FieldError, desc *string) []domain.FieldError {
	if desc != nil && utf8.RuneCountInString(*desc) > maxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	return errs
}
