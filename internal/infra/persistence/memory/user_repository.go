// Package memory keeps users and sessions in process memory. It backs the
// memory persistence driver and is what tests and single-node setups run on.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/errors"

	"github.com/google/uuid"
)

type userRepository struct {
	mu    sync.RWMutex
	users []*entity.User
	now   func() time.Time
}

// NewUserRepository returns an empty user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{now: time.Now}
}

func (repo *userRepository) Search(_ context.Context, field, value string) ([]*entity.User, error) {
	if !repository.IsSearchableField(field) {
		return nil, errors.Wrapf(repository.ErrInvalidField, "field %q", field)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	found := make([]*entity.User, 0)
	for _, user := range repo.users {
		if v, ok := fieldValue(user, field); ok && v == value {
			found = append(found, clone(user))
		}
	}

	return found, nil
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if i := repo.indexOf(id); i >= 0 {
		return clone(repo.users[i]), nil
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, user := range repo.users {
		if user.Email == email {
			return clone(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	if strings.TrimSpace(user.Email) == "" {
		return errors.New("user email is required")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if slices.ContainsFunc(repo.users, func(u *entity.User) bool { return u.Email == user.Email }) {
		return repository.ErrUserAlreadyExists
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := repo.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	repo.users = append(repo.users, clone(user))

	return nil
}

func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(user.ID)
	if i < 0 {
		return repository.ErrUserNotFound
	}

	for j, other := range repo.users {
		if j != i && other.Email == user.Email {
			return repository.ErrUserAlreadyExists
		}
	}

	user.CreatedAt = repo.users[i].CreatedAt
	user.UpdatedAt = repo.now().UTC()
	repo.users[i] = clone(user)

	return nil
}

func (repo *userRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(repo.users, func(u *entity.User) bool { return u.ID == id })
}

// fieldValue reports false for unset optional fields so they never match.
func fieldValue(user *entity.User, field string) (string, bool) {
	switch field {
	case repository.FieldID:
		return user.ID.String(), true
	case repository.FieldEmail:
		return user.Email, true
	case repository.FieldHashedPassword:
		return user.HashedPassword, true
	case repository.FieldSessionID:
		return deref(user.SessionID)
	case repository.FieldResetToken:
		return deref(user.ResetToken)
	default:
		return "", false
	}
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}

	return *s, true
}

func clone(user *entity.User) *entity.User {
	cp := *user
	if user.SessionID != nil {
		sessionID := *user.SessionID
		cp.SessionID = &sessionID
	}
	if user.ResetToken != nil {
		token := *user.ResetToken
		cp.ResetToken = &token
	}

	return &cp
}
