package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Check(hash, "s3cret"))
	assert.False(t, h.Check(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}

func TestNewHasherClampsCost(t *testing.T) {
	assert.Equal(t, BcryptCost, NewHasher(0).Cost)
	assert.Equal(t, BcryptCost, NewHasher(99).Cost)
	assert.Equal(t, bcrypt.MinCost, NewHasher(bcrypt.MinCost).Cost)
}
