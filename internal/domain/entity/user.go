// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate against the API.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email          string    // Login identifier, unique across users.
	HashedPassword string    // bcrypt digest of the password; never the plaintext.
	SessionID      *string   // Last session issued at login. Nil when logged out.
	ResetToken     *string   // Single-use password reset token. Nil when no reset is pending.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Public is the projection of a user that is safe to return to clients.
type Public struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// ToPublic strips credentials from the user.
func (u *User) ToPublic() Public {
	return Public{ID: u.ID, Email: u.Email}
}
