// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authgate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdatePasswordInput completes a password reset.
type UpdatePasswordInput struct {
	Email       string
	ResetToken  string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput carries the session issued at login.
type LoginOutput struct {
	SessionID string
	User      *entity.User
}

// AuthUsecase covers the account lifecycle: registration, session login and
// logout, and password reset.
type AuthUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// ValidLogin reports whether password is correct for the user with email.
	ValidLogin(ctx context.Context, email, password string) bool

	// Login checks the credentials and opens a session. Unknown emails and
	// wrong passwords both fail with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout ends the session. It fails with ErrSessionNotFound when there was nothing to end.
	Logout(ctx context.Context, sessionID string) error

	// UserFromSession returns the user whose last login issued sessionID.
	UserFromSession(ctx context.Context, sessionID string) (*entity.User, error)

	// GetResetPasswordToken issues a single-use reset token for email.
	GetResetPasswordToken(ctx context.Context, email string) (string, error)

	// UpdatePassword sets a new password and consumes the reset token.
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error
}
