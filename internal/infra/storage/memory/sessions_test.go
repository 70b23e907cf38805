package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuedesk/internal/app/auth"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	now := time.Now().UTC()

	session := &auth.Session{
		Token:     "tok-1",
		Email:     "admin@example.com",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, store.Put(ctx, session))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)

	// The store hands out copies.
	got.Email = "mutated"
	again, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", again.Email)

	_, err = store.Get(ctx, "unknown")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "tok-1"), auth.ErrSessionNotFound)
}

func TestSessionStoreEvictsExpired(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Put(ctx, &auth.Session{
		Token:     "stale",
		Email:     "admin@example.com",
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}))

	_, err := store.Get(ctx, "stale")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}
