package domain

import (
	"errors"
	"strings"
)

// Sentinel errors. Services wrap them with fmt.Errorf("op: %w", err) and the
// transport layer maps them to status codes with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrUnauthorized means the caller is known but may not act on the
	// resource: another worker's entry, or a report without the ADMIN role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict is returned by Start while the user already has an
	// IN_PROGRESS entry.
	ErrConflict = errors.New("conflict")

	// ErrInvalidState covers transitions from a non IN_PROGRESS entry and
	// work against inactive tasks or projects.
	ErrInvalidState = errors.New("invalid state")

	// ErrFutureTime rejects a start time later than now.
	ErrFutureTime = errors.New("time is in the future")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every malformed field of one input, so a client
// can fix them in a single round trip.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
