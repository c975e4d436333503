package memory

import (
	"context"
	"sync"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/errors"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entity.UserSession
}

// NewSessionRepository returns an empty session repository.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{sessions: make(map[string]entity.UserSession)}
}

func (repo *sessionRepository) Create(_ context.Context, session *entity.UserSession) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.sessions[session.SessionID]; taken {
		return errors.Errorf("session %s already exists", session.SessionID)
	}
	repo.sessions[session.SessionID] = *session

	return nil
}

func (repo *sessionRepository) FindBySessionID(_ context.Context, sessionID string) (*entity.UserSession, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	session, ok := repo.sessions[sessionID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &session, nil
}

func (repo *sessionRepository) DeleteBySessionID(_ context.Context, sessionID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.sessions[sessionID]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(repo.sessions, sessionID)

	return nil
}
