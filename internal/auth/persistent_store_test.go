package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	mockRepo "authgate/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPersistentStore_Create(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()
	repo := mockRepo.NewMockSessionRepository(t)
	store := NewPersistentStore(repo, clock)

	var saved *entity.UserSession
	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserSession")).
		Run(func(_ context.Context, session *entity.UserSession) { saved = session }).
		Return(nil)

	sessionID, err := store.Create(ctx, "user-1")

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, sessionID, saved.SessionID)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, clock.Now(), saved.CreatedAt)
}

func TestPersistentStore_CreateEmptyUser(t *testing.T) {
	store := NewPersistentStore(mockRepo.NewMockSessionRepository(t), nil)

	_, err := store.Create(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestPersistentStore_StorageFailures(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")
	repo := mockRepo.NewMockSessionRepository(t)
	store := NewPersistentStore(repo, nil)

	repo.EXPECT().Create(ctx, mock.Anything).Return(dbErr)
	repo.EXPECT().FindBySessionID(ctx, "sid").Return(nil, dbErr)
	repo.EXPECT().DeleteBySessionID(ctx, "sid").Return(dbErr)

	_, err := store.Create(ctx, "user-1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, dbErr)

	_, err = store.Lookup(ctx, "sid")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	err = store.Delete(ctx, "sid")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestPersistentStore_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockSessionRepository(t)
	store := NewPersistentStore(repo, nil)

	repo.EXPECT().FindBySessionID(ctx, "missing").Return(nil, repository.ErrSessionNotFound)
	repo.EXPECT().DeleteBySessionID(ctx, "missing").Return(repository.ErrSessionNotFound)

	_, err := store.Lookup(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrSessionNotFound)

	_, err = store.Lookup(ctx, "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPersistentStore_WithExpiry(t *testing.T) {
	ctx := context.Background()
	clock := newManualClock()
	repo := mockRepo.NewMockSessionRepository(t)
	store := NewExpiringStore(NewPersistentStore(repo, clock), time.Minute, clock)

	stored := &entity.UserSession{SessionID: "sid", UserID: "user-1", CreatedAt: clock.Now()}
	repo.EXPECT().FindBySessionID(ctx, "sid").Return(stored, nil)
	repo.EXPECT().DeleteBySessionID(ctx, "sid").Return(nil).Once()

	session, err := store.Lookup(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)

	clock.Advance(2 * time.Minute)
	_, err = store.Lookup(ctx, "sid")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestExpiringStore_PurgesSessionWithoutCreationTime(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockSessionRepository(t)
	store := NewExpiringStore(NewPersistentStore(repo, newManualClock()), time.Minute, newManualClock())

	repo.EXPECT().FindBySessionID(ctx, "sid").Return(&entity.UserSession{SessionID: "sid", UserID: "user-1"}, nil).Once()
	repo.EXPECT().DeleteBySessionID(ctx, "sid").Return(nil).Once()

	_, err := store.Lookup(ctx, "sid")
	assert.ErrorIs(t, err, ErrSessionExpired)
}
