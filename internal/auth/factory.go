package auth

import (
	"log/slog"

	"authgate/config"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/errors"

	"github.com/thejerf/abtime"
	"go.uber.org/fx"
)

// Params are the dependencies shared by every strategy.
type Params struct {
	fx.In

	Config   *config.Config
	Users    repository.UserRepository
	Sessions repository.SessionRepository `optional:"true"`
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
	Clock    abtime.AbstractTime `optional:"true"`
}

// NewSessionManager builds the session strategy used to log users in and out.
// Its store follows auth.type: session_db persists sessions, session_exp and
// session_db expire them after auth.sessionDuration, everything else keeps
// them in memory until logout.
func NewSessionManager(p Params) (*SessionAuth, error) {
	authCfg := p.Config.Auth
	name := authCfg.Type
	var store Store

	switch authCfg.Type {
	case config.AuthTypeSessionDB:
		if p.Sessions == nil {
			return nil, errors.New("auth.type session_db requires a session repository")
		}
		store = NewExpiringStore(NewPersistentStore(p.Sessions, p.Clock), authCfg.SessionDuration, p.Clock)
	case config.AuthTypeSessionExp:
		store = NewExpiringStore(NewMemoryStore(p.Clock), authCfg.SessionDuration, p.Clock)
	case config.AuthTypeSession:
		store = NewMemoryStore(p.Clock)
	default:
		name = config.AuthTypeSession
		store = NewMemoryStore(p.Clock)
	}

	return NewSessionAuth(SessionOptions{
		Name:       name,
		CookieName: authCfg.SessionName,
		Exemptions: authCfg.ExcludedPaths,
	}, store, p.Users, p.Logger), nil
}

// NewStrategy selects the strategy named by auth.type.
func NewStrategy(p Params, sessions *SessionAuth) (Strategy, error) {
	switch p.Config.Auth.Type {
	case config.AuthTypeNone:
		return NoAuth{}, nil
	case config.AuthTypeBasic:
		return NewBasicAuth(p.Config.Auth.ExcludedPaths, p.Users, p.Hasher, p.Logger), nil
	case config.AuthTypeSession, config.AuthTypeSessionExp, config.AuthTypeSessionDB:
		return sessions, nil
	default:
		return nil, errors.Wrapf(errors.New("unknown auth type"), "auth.type %q", p.Config.Auth.Type)
	}
}
