package auth

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
)

// BasicAuth authenticates requests with an HTTP Basic Authorization header
// holding "email:password".
type BasicAuth struct {
	exempting

	users  repository.UserRepository
	hasher service.PasswordHasher
	logger *slog.Logger
}

func NewBasicAuth(exemptions []string, users repository.UserRepository, hasher service.PasswordHasher, logger *slog.Logger) *BasicAuth {
	return &BasicAuth{
		exempting: exempting{exemptions: exemptions},
		users:     users,
		hasher:    hasher,
		logger:    logger,
	}
}

func (a *BasicAuth) Name() string { return "basic" }

func (a *BasicAuth) HasCredentials(r *http.Request) bool {
	return AuthorizationHeader(r) != ""
}

// CurrentUser never fails: malformed headers, unknown emails and wrong
// passwords all resolve to no user.
func (a *BasicAuth) CurrentUser(r *http.Request) (*entity.User, error) {
	blob, ok := ExtractBasicCredentials(AuthorizationHeader(r))
	if !ok {
		return nil, nil
	}
	decoded, ok := DecodeBasicCredentials(blob)
	if !ok {
		return nil, nil
	}
	email, password, ok := SplitCredentials(decoded)
	if !ok {
		return nil, nil
	}

	return a.UserFromCredentials(r.Context(), email, password), nil
}

// UserFromCredentials returns the user with the given email if password matches.
// When several users share the email the oldest one is checked.
func (a *BasicAuth) UserFromCredentials(ctx context.Context, email, password string) *entity.User {
	if email == "" {
		return nil
	}

	users, err := a.users.Search(ctx, repository.FieldEmail, email)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).Warn("user lookup failed",
			slog.String("strategy", a.Name()),
			slog.Any("error", err),
		)

		return nil
	}
	if len(users) == 0 {
		return nil
	}

	user := users[0]
	if !a.hasher.Check(password, user.HashedPassword) {
		return nil
	}

	return user
}
