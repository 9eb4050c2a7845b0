package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", digest)

	assert.True(t, hasher.Verify("hunter2", digest))
	assert.False(t, hasher.Verify("HUNTER2", digest), "verification is case-sensitive")
	assert.False(t, hasher.Verify("hunter2 ", digest), "verification is an exact match")
	assert.False(t, hasher.Verify("", digest))
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	second, err := hasher.Hash("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each digest carries its own salt")
	assert.True(t, hasher.Verify("hunter2", first))
	assert.True(t, hasher.Verify("hunter2", second))
}

func TestBcryptHasher_ZeroCostUsesDefault(t *testing.T) {
	hasher := NewBcryptHasher(0)

	digest, err := hasher.Hash("hunter2")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
