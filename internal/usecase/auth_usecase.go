// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      entity.Role
	IPAddress string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
}

// LogoutInput identifies the session being closed.
type LogoutInput struct {
	UserID    uuid.UUID
	IPAddress string
}

// ForgotPasswordInput carries the email a reset is requested for.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput redeems a reset token for a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user and their bearer token.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// ForgotPasswordOutput carries the reset link when mail delivery is not
// configured. Empty otherwise, including when the email is unknown.
type ForgotPasswordOutput struct {
	ResetURL string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*ForgotPasswordOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
