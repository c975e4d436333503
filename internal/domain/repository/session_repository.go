package repository

import (
	"context"
	"errors"

	"authgate/internal/domain/entity"
)

// ErrSessionNotFound is returned when no persisted session has the requested id.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists user sessions so they survive process restarts.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.UserSession) error

	// FindBySessionID retrieves the session with the given id.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.UserSession, error)

	// DeleteBySessionID removes the session with the given id.
	DeleteBySessionID(ctx context.Context, sessionID string) error
}
