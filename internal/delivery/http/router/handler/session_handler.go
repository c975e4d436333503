package handler

import (
	"net/http"
	"strings"
	"time"

	"authgate/config"
	"authgate/internal/auth"
	"authgate/internal/delivery/http/response"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SessionHandler logs users in and out with a session cookie.
type SessionHandler struct {
	uc       usecase.AuthUsecase
	sessions *auth.SessionAuth
	ttl      time.Duration
}

func NewSessionHandler(uc usecase.AuthUsecase, sessions *auth.SessionAuth, cfg *config.Config) *SessionHandler {
	return &SessionHandler{uc: uc, sessions: sessions, ttl: cfg.Auth.SessionDuration}
}

// Login handles POST /auth_session/login.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if strings.TrimSpace(req.Email) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email missing")
	}
	if req.Password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password missing")
	}

	out, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.cookie(out.SessionID))

	return response.Success(c, http.StatusOK, loginResponse{Email: out.User.Email, Message: "logged in"}, "")
}

// Logout handles DELETE /auth_session/logout. It answers 404 when the
// request carries no live session.
func (h *SessionHandler) Logout(c echo.Context) error {
	sessionID, ok := h.sessions.SessionID(c.Request())
	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	if err := h.uc.Logout(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	expired := h.cookie("")
	expired.MaxAge = -1
	expired.Expires = time.Unix(0, 0)
	c.SetCookie(expired)

	return response.Success(c, http.StatusOK, nil, "logged out")
}

func (h *SessionHandler) cookie(value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.sessions.CookieName(),
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.ttl > 0 && value != "" {
		cookie.MaxAge = int(h.ttl.Seconds())
	}

	return cookie
}
