package context

import (
	"authgate/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the echo.Context key holding the authenticated *entity.User.
const KeyUser ContextKey = "user"

// SetUser stores the authenticated user in echo.Context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated user, or nil for anonymous requests.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(string(KeyUser)).(*entity.User)

	return user
}
