package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateLookupDelete(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()
	store := NewMemoryStore(clock)

	sessionID, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, sessionID, 36)

	session, err := store.Lookup(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, clock.Now(), session.CreatedAt)

	require.NoError(t, store.Delete(ctx, sessionID))

	_, err = store.Lookup(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, sessionID), ErrSessionNotFound)
}

func TestMemoryStore_RejectsEmptyUserID(t *testing.T) {
	store := NewMemoryStore(nil)

	_, err := store.Create(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = store.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidUserID)
	assert.Zero(t, store.Len())
}

func TestMemoryStore_LookupEmptyID(t *testing.T) {
	_, err := NewMemoryStore(nil).Lookup(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_SessionsAreDistinct(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	first, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	second, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	const workers = 32
	ids := make([]string, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.Create(ctx, "user")
			assert.NoError(t, err)
			ids[i] = id
			_, err = store.Lookup(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, store.Len())

	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Delete(ctx, id))
		}()
	}
	wg.Wait()

	assert.Zero(t, store.Len())
}

func TestExpiringStore_Lookup(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()
	inner := NewMemoryStore(clock)
	store := NewExpiringStore(inner, 2*time.Second, clock)

	sessionID, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	clock.Advance(time.Second)
	session, err := store.Lookup(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)

	clock.Advance(2 * time.Second)
	_, err = store.Lookup(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Zero(t, inner.Len(), "expired session is purged")

	_, err = store.Lookup(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExpiringStore_ExactDeadlineIsStillValid(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()
	store := NewExpiringStore(NewMemoryStore(clock), 2*time.Second, clock)

	sessionID, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	_, err = store.Lookup(ctx, sessionID)
	assert.NoError(t, err)
}

func TestExpiringStore_NonPositiveTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()

	for _, ttl := range []time.Duration{0, -time.Second} {
		store := NewExpiringStore(NewMemoryStore(clock), ttl, clock)

		sessionID, err := store.Create(ctx, "user-1")
		require.NoError(t, err)

		clock.Advance(24 * time.Hour)
		_, err = store.Lookup(ctx, sessionID)
		assert.NoError(t, err)
	}
}

func TestExpiringStore_DeleteAndUnknown(t *testing.T) {
	ctx := context.Background()
	store := NewExpiringStore(NewMemoryStore(nil), time.Hour, nil)

	sessionID, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, sessionID))

	_, err = store.Lookup(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, time.Hour, store.TTL())
}
