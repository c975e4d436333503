package auth

import (
	"net/http"

	"authgate/internal/domain/entity"
)

// Strategy resolves the caller of a request.
type Strategy interface {
	// Name identifies the strategy in logs and metrics.
	Name() string

	// RequiresAuth reports whether path must be authenticated.
	RequiresAuth(path string) bool

	// HasCredentials reports whether the request carries a credential in the
	// format this strategy understands, whether or not it is valid.
	HasCredentials(r *http.Request) bool

	// CurrentUser returns the user the request authenticates as, or nil.
	// A non-nil error means the lookup could not be completed.
	CurrentUser(r *http.Request) (*entity.User, error)
}

type exempting struct {
	exemptions ExemptionList
}

func (e exempting) RequiresAuth(path string) bool {
	return e.exemptions.RequiresAuth(path)
}

// NoAuth lets every request through.
type NoAuth struct{}

func (NoAuth) Name() string { return "none" }

func (NoAuth) RequiresAuth(string) bool { return false }

func (NoAuth) HasCredentials(*http.Request) bool { return false }

func (NoAuth) CurrentUser(*http.Request) (*entity.User, error) { return nil, nil }
