package entity

import (
	"time"

	"github.com/google/uuid"
)

// Action represents the kind of event recorded in the activity log.
type Action string

const (
	// ActionLogin records a successful login.
	ActionLogin Action = "login"
	// ActionLogout records an explicit logout.
	ActionLogout Action = "logout"
	// ActionRegister records account creation.
	ActionRegister Action = "register"
)

// IsValid checks if the Action is a valid value.
func (a Action) IsValid() bool {
	switch a {
	case ActionLogin, ActionLogout, ActionRegister:
		return true
	default:
		return false
	}
}

// ActivityLog is an append-only audit record of an authentication event.
// Entries are never mutated or deleted by application logic outside of
// account-deletion cascades.
type ActivityLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	User      *UserSummary // Populated on admin reads that join the user.
	Action    Action
	IPAddress string
	Timestamp time.Time
}
