package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the self-service profile fields a user may change.
// Password is optional; when empty the current hash is kept.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	Password string
}

// UserUsecase defines the interface for user directory and profile operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	ListUsersByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the user and cascades their invoices, payments,
	// activity entries, and reset tokens. Refused while the user participates
	// in any pending or overdue invoice.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
