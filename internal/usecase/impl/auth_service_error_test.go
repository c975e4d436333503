package impl

import (
	"context"
	"testing"

	"authgate/internal/auth"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	mockRepo "authgate/internal/mocks/repository"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterUser_HashFailure(t *testing.T) {
	f := newMockFixture(t, nil)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("secret").Return("", errors.New("bcrypt failure"))

	_, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "bob@example.com", Password: "secret"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_RegisterUser_LookupFailure(t *testing.T) {
	f := newMockFixture(t, nil)
	ctx := context.Background()
	dbErr := errors.New("db down")

	f.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, dbErr)

	_, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "bob@example.com", Password: "secret"})

	assert.True(t, errors.Is(err, dbErr))
}

func TestAuthService_RegisterUser_CreateRace(t *testing.T) {
	f := newMockFixture(t, nil)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserAlreadyExists)

	_, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "bob@example.com", Password: "secret"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	f := newMockFixture(t, auth.NewPersistentStore(sessionRepo, nil))
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com", HashedPassword: "hashed"}

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hashed").Return(true)
	sessionRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SESSION_STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestAuthService_Login_PreviousSessionStoreUnavailable(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	f := newMockFixture(t, auth.NewPersistentStore(sessionRepo, nil))
	ctx := context.Background()
	previous := "old-session"
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com", HashedPassword: "hashed", SessionID: &previous}

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hashed").Return(true)
	sessionRepo.EXPECT().FindBySessionID(ctx, previous).Return(nil, errors.New("db down"))

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SESSION_STORE_UNAVAILABLE", appErr.ErrorCode())
}

func TestAuthService_Login_PreviousSessionAlreadyGone(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	f := newMockFixture(t, auth.NewPersistentStore(sessionRepo, nil))
	ctx := context.Background()
	previous := "old-session"
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com", HashedPassword: "hashed", SessionID: &previous}

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hashed").Return(true)
	sessionRepo.EXPECT().FindBySessionID(ctx, previous).Return(nil, repository.ErrSessionNotFound)
	sessionRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.userRepo.EXPECT().Update(ctx, user).Return(nil)

	out, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, out.SessionID, *user.SessionID)
}

func TestAuthService_Logout_UnknownSession(t *testing.T) {
	f := newMockFixture(t, nil)

	err := f.service.Logout(context.Background(), "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestAuthService_GetResetPasswordToken_GeneratorFailure(t *testing.T) {
	f := newMockFixture(t, nil)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com"}

	f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	f.tokens.EXPECT().Generate().Return("", errors.New("entropy exhausted"))

	_, err := f.service.GetResetPasswordToken(ctx, user.Email)

	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestAuthService_UpdatePassword_SearchFailure(t *testing.T) {
	f := newMockFixture(t, nil)
	ctx := context.Background()

	f.userRepo.EXPECT().Search(ctx, repository.FieldResetToken, "token").Return(nil, errors.New("db down"))

	err := f.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Email: "bob@example.com", ResetToken: "token", NewPassword: "new"})

	assert.ErrorContains(t, err, "db down")
}
