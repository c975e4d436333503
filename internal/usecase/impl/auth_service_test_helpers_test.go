package impl

import (
	"io"
	"log/slog"
	"testing"

	"authgate/internal/auth"
	"authgate/internal/domain/repository"
	infraauth "authgate/internal/infra/auth"
	"authgate/internal/infra/persistence/memory"
	mockRepo "authgate/internal/mocks/repository"
	mockSvc "authgate/internal/mocks/service"
	"authgate/internal/usecase"

	"golang.org/x/crypto/bcrypt"
)

const testCookie = "session_id"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSessionAuth(users repository.UserRepository, store auth.Store) *auth.SessionAuth {
	return auth.NewSessionAuth(auth.SessionOptions{Name: "session", CookieName: testCookie}, store, users, newDiscardLogger())
}

// inMemoryFixture wires the service against real in-memory collaborators.
type inMemoryFixture struct {
	service  usecase.AuthUsecase
	users    repository.UserRepository
	sessions *auth.SessionAuth
}

func newInMemoryFixture(t *testing.T) inMemoryFixture {
	t.Helper()

	users := memory.NewUserRepository()
	sessions := newSessionAuth(users, auth.NewMemoryStore(nil))

	return inMemoryFixture{
		service: NewAuthService(AuthServiceParams{
			UserRepo: users,
			Hasher:   infraauth.NewBcryptHasherWithCost(bcrypt.MinCost),
			Tokens:   infraauth.NewResetTokenGenerator(),
			Sessions: sessions,
			Logger:   newDiscardLogger(),
		}),
		users:    users,
		sessions: sessions,
	}
}

// mockFixture wires the service against mocks for failure paths.
type mockFixture struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenGenerator
}

func newMockFixture(t *testing.T, store auth.Store) mockFixture {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenGenerator(t)
	if store == nil {
		store = auth.NewMemoryStore(nil)
	}

	return mockFixture{
		service: NewAuthService(AuthServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
			Tokens:   tokens,
			Sessions: newSessionAuth(userRepo, store),
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}
