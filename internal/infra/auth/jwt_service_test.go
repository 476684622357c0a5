package auth

import (
	"testing"
	"time"

	"ledger/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	cfg := &config.Config{Auth: config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.JWT = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "issuer-secret", time.Hour)
	verifier := newTestTokenService(t, "other-secret", time.Hour)

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	// Built directly: the constructor replaces non-positive TTLs with the default.
	svc := &jwtService{secret: "test-secret", tokenTTL: -time.Minute}

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	claims, err := svc.ValidateToken("not.a.token")

	require.Error(t, err)
	assert.Nil(t, claims)
}
