package auth

import (
	"testing"

	"ledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the test fast; correctness does not depend on the cost.
	return NewBcryptHasher(&config.Config{
		Auth: config.AuthConfig{BcryptCost: 4},
	}).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Password123!")

	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)
	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check_MalformedHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("Password123!", "not-a-bcrypt-hash"))
}
