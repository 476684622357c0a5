// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for password reset token persistence.
var (
	// ErrResetTokenNotFound is returned when no matching token exists.
	ErrResetTokenNotFound = errors.New("password reset token not found")
	// ErrResetTokenExpired is returned when a matching token exists but has expired.
	ErrResetTokenExpired = errors.New("password reset token expired")
)

// PasswordResetTokenRepository defines the interface for reset token persistence.
type PasswordResetTokenRepository interface {
	// Create persists a new reset token.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindValidByToken retrieves an unexpired token by its random value.
	// Returns ErrResetTokenNotFound or ErrResetTokenExpired otherwise.
	FindValidByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// DeleteByUserID removes all tokens for a user, enforcing the one-active-
	// token-per-user rule before issuing a new one.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// Delete removes a token by ID after successful use.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes every expired token.
	DeleteExpired(ctx context.Context) error
}
