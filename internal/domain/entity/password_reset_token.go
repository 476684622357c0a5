package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is a short-lived, single-use credential letting a user
// set a new password. Issuing a new token invalidates any prior token for the
// same user (delete-then-create).
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string // Random 32-byte hex string, unique.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is past its expiry at the given instant.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
