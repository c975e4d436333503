package auth

import (
	"context"
	"strings"
	"sync"

	"authgate/internal/domain/entity"
	"authgate/internal/errors"

	"github.com/google/uuid"
	"github.com/thejerf/abtime"
)

var (
	// ErrInvalidUserID is returned when a session is requested for an empty user id.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrSessionNotFound is returned when a session id is unknown to the store.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session outlived its time-to-live. The entry is purged.
	ErrSessionExpired = errors.New("session expired")
	// ErrStoreUnavailable wraps failures of the backing session storage.
	ErrStoreUnavailable = errors.New("session store unavailable")
)

// orRealTime returns t, or the wall clock when t is nil.
func orRealTime(t abtime.AbstractTime) abtime.AbstractTime {
	if t == nil {
		return abtime.NewRealTime()
	}

	return t
}

// Store maps opaque session ids to the user they were issued for.
type Store interface {
	// Create issues a new session id for userID.
	Create(ctx context.Context, userID string) (string, error)

	// Lookup returns the session for id, or ErrSessionNotFound.
	Lookup(ctx context.Context, sessionID string) (*entity.UserSession, error)

	// Delete removes the session for id, or returns ErrSessionNotFound.
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps sessions in process memory. Sessions never expire on their
// own; wrap it in an ExpiringStore for a time-to-live.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.UserSession
	clock    abtime.AbstractTime
}

// NewMemoryStore creates an empty store. A nil clock uses the wall clock.
func NewMemoryStore(clock abtime.AbstractTime) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entity.UserSession),
		clock:    orRealTime(clock),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrInvalidUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.NewString()
	for _, taken := s.sessions[sessionID]; taken; _, taken = s.sessions[sessionID] {
		sessionID = uuid.NewString()
	}

	s.sessions[sessionID] = entity.UserSession{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: s.clock.Now().UTC(),
	}

	return sessionID, nil
}

func (s *MemoryStore) Lookup(_ context.Context, sessionID string) (*entity.UserSession, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	return nil
}

// Len returns the number of live entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
