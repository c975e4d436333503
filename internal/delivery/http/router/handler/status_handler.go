package handler

import (
	"net/http"

	"authgate/internal/delivery/http/response"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// StatusHandler serves liveness and the fixed error endpoints.
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Status reports that the API is up.
func (h *StatusHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "OK"}, "")
}

// Unauthorized always fails with 401.
func (h *StatusHandler) Unauthorized(echo.Context) error {
	return domainerrors.ErrUnauthorized
}

// Forbidden always fails with 403.
func (h *StatusHandler) Forbidden(echo.Context) error {
	return domainerrors.ErrForbidden
}

// Metrics exposes Prometheus metrics.
func (h *StatusHandler) Metrics(c echo.Context) error {
	metrics.Handler().ServeHTTP(c.Response(), c.Request())

	return nil
}
