// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status represents whether an account may authenticate and act.
type Status string

const (
	// StatusActive indicates a usable account.
	StatusActive Status = "active"
	// StatusInactive indicates a deactivated account that may not log in.
	StatusInactive Status = "inactive"
)

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// User is the core entity of the system, representing an account that issues
// invoices (provider), owes them (purchaser), or administers the platform.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The user's login identifier. Unique across the system.
	PasswordHash string    // The bcrypt hash of the user's password. Never serialized.
	Role         Role      // The user's role. Assigned at registration and never mutated.
	Status       Status    // Whether the account is active or deactivated.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Summary strips the user down to the fields other users may see.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}

	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserSummary is the projection of a User embedded in invoices, payments, and
// activity entries. It never carries credentials.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
