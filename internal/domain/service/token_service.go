package service

import "github.com/google/uuid"

// TokenClaims carries the identity embedded in a signed bearer token.
type TokenClaims struct {
	UserID uuid.UUID
}

// TokenService defines the interface for bearer token operations.
type TokenService interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns its claims.
	ValidateToken(token string) (*TokenClaims, error)
}
