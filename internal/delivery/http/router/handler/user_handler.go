// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"authgate/internal/auth"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/response"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Email    string `json:"email" form:"email" validate:"required,max=250"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc       usecase.AuthUsecase
	sessions *auth.SessionAuth
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AuthUsecase, sessions *auth.SessionAuth, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, sessions: sessions, logger: logger}
}

// RegisterUser handles POST /users.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user.ToPublic(), "user created")
}

// Me handles GET /users/me. The gate resolves the caller; when it did not
// (auth disabled) the session cookie is looked up directly.
func (h *UserHandler) Me(c echo.Context) error {
	if user := deliverycontext.GetUser(c); user != nil {
		return response.Success(c, http.StatusOK, user.ToPublic(), "")
	}

	sessionID, ok := h.sessions.SessionID(c.Request())
	if !ok {
		return domainerrors.ErrForbidden
	}

	user, err := h.uc.UserFromSession(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return domainerrors.ErrForbidden
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user.ToPublic(), "")
}
