package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity reference owned by the identity provider.
// The core reads users but never mutates them.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the name when set, falling back to the email.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// IsActive returns true if the user may log time.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
