package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("coffee123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "coffee123", hash)

	assert.True(t, hasher.Check("coffee123", hash))
	assert.False(t, hasher.Check("espresso456", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("coffee123")
	require.NoError(t, err)
	second, err := hasher.Hash("coffee123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("coffee123", first))
	assert.True(t, hasher.Check("coffee123", second))
}

func TestBcryptHasher_CheckRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("coffee123", "not-a-bcrypt-hash"))
}
