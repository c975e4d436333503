// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"authgate/internal/auth"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenGenerator
	sessions *auth.SessionAuth
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Tokens   service.TokenGenerator
	Sessions *auth.SessionAuth
	Logger   *slog.Logger
}

func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("register user")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:             uuid.New(),
		Email:          input.Email,
		HashedPassword: hashed,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("register user")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()), slog.String("email", user.Email))

	return user, nil
}

func (srv *authService) ValidLogin(ctx context.Context, email, password string) bool {
	_, ok := srv.checkCredentials(ctx, email, password)

	return ok
}

func (srv *authService) checkCredentials(ctx context.Context, email, password string) (*entity.User, bool) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("User lookup failed during login", slog.Any("error", err))
		}

		return nil, false
	}

	if !srv.hasher.Check(password, user.HashedPassword) {
		return nil, false
	}

	return user, true
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, ok := srv.checkCredentials(ctx, input.Email, input.Password)
	if !ok {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// A user holds at most one session; logging in again ends the previous one.
	if user.SessionID != nil {
		if _, err := srv.sessions.DestroySessionID(ctx, *user.SessionID); err != nil {
			return nil, srv.storeError(ctx, err, "destroy previous session")
		}
	}

	sessionID, err := srv.sessions.CreateSession(ctx, user.ID.String())
	if err != nil {
		return nil, srv.storeError(ctx, err, "create session")
	}

	user.SessionID = &sessionID
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to record session on user")
	}

	srv.log(ctx).Debug("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{SessionID: sessionID, User: user}, nil
}

func (srv *authService) Logout(ctx context.Context, sessionID string) error {
	userID, err := srv.sessions.UserIDForSession(ctx, sessionID)
	if err != nil {
		return srv.storeError(ctx, err, "look up session")
	}

	destroyed, err := srv.sessions.DestroySessionID(ctx, sessionID)
	if err != nil {
		return srv.storeError(ctx, err, "destroy session")
	}
	if !destroyed {
		return domainerrors.ErrSessionNotFound.WrapMessage("logout")
	}

	srv.clearSessionID(ctx, userID, sessionID)

	return nil
}

// clearSessionID forgets the session on the user row if it is still the latest one.
func (srv *authService) clearSessionID(ctx context.Context, userID, sessionID string) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil || user.SessionID == nil || *user.SessionID != sessionID {
		return
	}

	user.SessionID = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to clear session on user", slog.String("userID", userID), slog.Any("error", err))
	}
}

func (srv *authService) UserFromSession(ctx context.Context, sessionID string) (*entity.User, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("empty session id")
	}

	users, err := srv.userRepo.Search(ctx, repository.FieldSessionID, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users by session")
	}
	if len(users) == 0 {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("no user for session")
	}

	return users[0], nil
}

func (srv *authService) GetResetPasswordToken(ctx context.Context, email string) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", domainerrors.ErrForbidden.WrapMessage("reset password for unknown email")
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to look up email")
	}

	token, err := srv.tokens.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate reset token")
	}

	user.ResetToken = &token
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to store reset token")
	}

	return token, nil
}

func (srv *authService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	users, err := srv.userRepo.Search(ctx, repository.FieldResetToken, input.ResetToken)
	if err != nil {
		return errors.Wrap(err, "failed to search users by reset token")
	}
	if len(users) == 0 || users[0].Email != input.Email {
		return domainerrors.ErrResetTokenInvalid.WrapMessage("update password")
	}

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := users[0]
	user.HashedPassword = hashed
	user.ResetToken = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.String("userID", user.ID.String()))

	return nil
}

func (srv *authService) storeError(ctx context.Context, err error, op string) error {
	srv.log(ctx).Error("Session store failure", slog.String("op", op), slog.Any("error", err))

	if errors.Is(err, auth.ErrStoreUnavailable) {
		return domainerrors.ErrSessionStoreUnavailable.WrapMessage(err.Error())
	}

	return errors.Wrap(err, op)
}
