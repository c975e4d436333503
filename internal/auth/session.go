package auth

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/errors"
	"authgate/internal/infra/metrics"

	"github.com/google/uuid"
)

// SessionAuth authenticates requests with a session id carried in a cookie.
// The in-memory, expiring and persisted variants differ only in their Store.
type SessionAuth struct {
	exempting

	name       string
	cookieName string
	store      Store
	users      repository.UserRepository
	logger     *slog.Logger
}

// SessionOptions configures a SessionAuth.
type SessionOptions struct {
	// Name identifies the variant in logs and metrics.
	Name       string
	CookieName string
	Exemptions []string
}

func NewSessionAuth(opts SessionOptions, store Store, users repository.UserRepository, logger *slog.Logger) *SessionAuth {
	return &SessionAuth{
		exempting:  exempting{exemptions: opts.Exemptions},
		name:       opts.Name,
		cookieName: opts.CookieName,
		store:      store,
		users:      users,
		logger:     logger,
	}
}

func (a *SessionAuth) Name() string { return a.name }

// CookieName is the cookie the session id travels in.
func (a *SessionAuth) CookieName() string { return a.cookieName }

// Store returns the backing session store.
func (a *SessionAuth) Store() Store { return a.store }

func (a *SessionAuth) HasCredentials(r *http.Request) bool {
	_, ok := SessionCookie(r, a.cookieName)

	return ok
}

// SessionID returns the session id sent with the request.
func (a *SessionAuth) SessionID(r *http.Request) (string, bool) {
	return SessionCookie(r, a.cookieName)
}

// CreateSession issues a new session for userID.
func (a *SessionAuth) CreateSession(ctx context.Context, userID string) (string, error) {
	sessionID, err := a.store.Create(ctx, userID)
	if err != nil {
		return "", err
	}
	metrics.RecordSessionCreated(a.name)

	return sessionID, nil
}

// UserIDForSession returns the user the session belongs to, or "" for unknown
// and expired sessions.
func (a *SessionAuth) UserIDForSession(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", nil
	}

	session, err := a.store.Lookup(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionExpired) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return session.UserID, nil
}

// DestroySession ends the session carried by the request. It reports false
// when there is no cookie or the session is unknown or expired.
func (a *SessionAuth) DestroySession(r *http.Request) (bool, error) {
	if r == nil {
		return false, nil
	}
	sessionID, ok := a.SessionID(r)
	if !ok {
		return false, nil
	}

	return a.DestroySessionID(r.Context(), sessionID)
}

// DestroySessionID ends the session with the given id.
func (a *SessionAuth) DestroySessionID(ctx context.Context, sessionID string) (bool, error) {
	userID, err := a.UserIDForSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if userID == "" {
		return false, nil
	}

	if err := a.store.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}

		return false, err
	}
	metrics.RecordSessionDestroyed()

	return true, nil
}

func (a *SessionAuth) CurrentUser(r *http.Request) (*entity.User, error) {
	sessionID, ok := a.SessionID(r)
	if !ok {
		return nil, nil
	}

	ctx := r.Context()
	userID, err := a.UserIDForSession(ctx, sessionID)
	if err != nil || userID == "" {
		return nil, err
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}

	user, err := a.users.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("user lookup failed",
				slog.String("strategy", a.name),
				slog.Any("error", err),
			)
		}

		return nil, nil
	}

	return user, nil
}
