package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreResolveAfterCreate(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	ctx := context.Background()

	token, err := s.Create(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestMemoryStoreUnknownTokenIsAbsent(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	userID, err := s.Resolve(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(50 * time.Millisecond)
	defer s.Close()

	ctx := context.Background()

	token, err := s.Create(ctx, "user-1")
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	userID, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestMemoryStoreRevoke(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	ctx := context.Background()

	token, err := s.Create(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, s.Revoke(ctx, token))

	userID, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, userID)

	// Revoking twice is fine
	require.NoError(t, s.Revoke(ctx, token))
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	ctx := context.Background()

	a, err := s.Create(ctx, "user-1")
	require.NoError(t, err)
	b, err := s.Create(ctx, "user-2")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
