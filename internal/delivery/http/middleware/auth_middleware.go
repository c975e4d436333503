package middleware

import (
	"authgate/internal/auth"
	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware applies the authentication gate to every request.
type AuthMiddleware struct {
	gate *auth.Gate
}

func NewAuthMiddleware(gate *auth.Gate) *AuthMiddleware {
	return &AuthMiddleware{gate: gate}
}

// Authenticate rejects requests the gate denies with 401 or 403 and stores
// the resolved user on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		decision, user, err := m.gate.Decide(c.Request())
		if err != nil {
			if errors.Is(err, auth.ErrStoreUnavailable) {
				return domainerrors.ErrSessionStoreUnavailable.WrapMessage(err.Error())
			}

			return errors.WithStack(err)
		}

		switch decision {
		case auth.Unauthorized:
			return domainerrors.ErrUnauthorized
		case auth.Forbidden:
			return domainerrors.ErrForbidden
		}

		if user != nil {
			deliverycontext.SetUser(c, user)
		}

		return next(c)
	}
}
