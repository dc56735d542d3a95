package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Project is a billable unit of work. HourlyRate is optional; projects
// without a rate never contribute to estimated cost.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description *string
	HourlyRate  *decimal.Decimal
	Status      ProjectStatus
	ClientName  *string
	ClientEmail *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Tasks is populated only by queries that attach them.
	Tasks []Task
}

// IsActive returns true if time may be logged against the project.
func (p *Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}

// Task belongs to exactly one project.
type Task struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}

// ProjectAssignment grants a worker permission to log time against a project.
type ProjectAssignment struct {
	ProjectID uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}
