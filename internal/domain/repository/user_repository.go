// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"slices"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches a lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when creating a user whose email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidField is returned when searching by a field users cannot be filtered on.
	ErrInvalidField = errors.New("invalid search field")
)

// Fields users can be searched by.
const (
	FieldID             = "id"
	FieldEmail          = "email"
	FieldHashedPassword = "hashed_password"
	FieldSessionID      = "session_id"
	FieldResetToken     = "reset_token"
)

var searchableFields = []string{FieldID, FieldEmail, FieldHashedPassword, FieldSessionID, FieldResetToken}

// IsSearchableField reports whether users can be filtered on field.
func IsSearchableField(field string) bool {
	return slices.Contains(searchableFields, field)
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Search returns the users whose field equals value, oldest first.
	// An empty result is not an error.
	Search(ctx context.Context, field, value string) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
