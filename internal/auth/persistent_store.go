package auth

import (
	"context"
	"fmt"
	"strings"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/errors"

	"github.com/google/uuid"
	"github.com/thejerf/abtime"
)

// PersistentStore keeps sessions in a SessionRepository so they survive restarts.
type PersistentStore struct {
	repo  repository.SessionRepository
	clock abtime.AbstractTime
}

// NewPersistentStore wraps repo. A nil clock uses the wall clock.
func NewPersistentStore(repo repository.SessionRepository, clock abtime.AbstractTime) *PersistentStore {
	return &PersistentStore{repo: repo, clock: orRealTime(clock)}
}

func (s *PersistentStore) Create(ctx context.Context, userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrInvalidUserID
	}

	session := &entity.UserSession{
		SessionID: uuid.NewString(),
		UserID:    userID,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return "", unavailable("create session", err)
	}

	return session.SessionID, nil
}

func (s *PersistentStore) Lookup(ctx context.Context, sessionID string) (*entity.UserSession, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.repo.FindBySessionID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, unavailable("find session", err)
	}

	return session, nil
}

func (s *PersistentStore) Delete(ctx context.Context, sessionID string) error {
	err := s.repo.DeleteBySessionID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return unavailable("delete session", err)
	}

	return nil
}

func unavailable(op string, err error) error {
	return errors.WithStack(fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err))
}
