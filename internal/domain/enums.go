package domain

// EntryStatus represents the lifecycle state of a time entry.
type EntryStatus string

const (
	EntryStatusInProgress EntryStatus = "IN_PROGRESS"
	EntryStatusCompleted  EntryStatus = "COMPLETED"
	EntryStatusCancelled  EntryStatus = "CANCELLED"
)

func (s EntryStatus) String() string { return string(s) }

func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusInProgress, EntryStatusCompleted, EntryStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s EntryStatus) IsTerminal() bool {
	return s == EntryStatusCompleted || s == EntryStatusCancelled
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
// Only IN_PROGRESS entries move, and only into a terminal status.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	return s == EntryStatusInProgress && next.IsTerminal()
}

// ProjectStatus represents the commercial state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusArchived  ProjectStatus = "ARCHIVED"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold, ProjectStatusArchived:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleWorker UserRole = "WORKER"
	UserRoleClient UserRole = "CLIENT"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleWorker, UserRoleClient:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// UserStatus tells whether an identity may still log time.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// RangeFilter selects a calendar window for a worker's history.
type RangeFilter string

const (
	RangeToday RangeFilter = "today"
	RangeWeek  RangeFilter = "week"
	RangeMonth RangeFilter = "month"
)

func (r RangeFilter) String() string { return string(r) }

func (r RangeFilter) IsValid() bool {
	switch r {
	case RangeToday, RangeWeek, RangeMonth:
		return true
	}
	return false
}
