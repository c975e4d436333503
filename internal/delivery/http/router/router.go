// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	deliverymiddleware "authgate/internal/delivery/middleware"
	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const apiPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	StatusHandler   *handler.StatusHandler
	UserHandler     *handler.UserHandler
	SessionHandler  *handler.SessionHandler
	PasswordHandler *handler.PasswordHandler

	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
	LoggerMiddleware    *deliverymiddleware.LoggerMiddleware
	AuthMiddleware      *middleware.AuthMiddleware
	ErrorMiddleware     *middleware.ErrorMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *Router {
	return &Router{params: params}
}

// RegisterRoutes installs the middleware chain and every route on e.
// The auth gate runs for unrouted paths too, so an unknown path is denied
// before it is reported missing.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.HTTPErrorHandler = p.ErrorMiddleware.HandleHTTPError
	e.Use(echomiddleware.Recover())
	e.Use(p.RequestIDMiddleware.Process)
	e.Use(p.LoggerMiddleware.Handle)
	e.Use(p.AuthMiddleware.Authenticate)

	e.GET("/metrics", p.StatusHandler.Metrics)

	api := e.Group(apiPrefix)
	api.GET("/status", p.StatusHandler.Status)
	api.GET("/unauthorized", p.StatusHandler.Unauthorized)
	api.GET("/forbidden", p.StatusHandler.Forbidden)

	api.POST("/users", p.UserHandler.RegisterUser)
	api.GET("/users/me", p.UserHandler.Me)

	api.POST("/auth_session/login", p.SessionHandler.Login)
	api.DELETE("/auth_session/logout", p.SessionHandler.Logout)

	api.POST("/reset_password", p.PasswordHandler.ResetToken)
	api.PUT("/reset_password", p.PasswordHandler.UpdatePassword)
}
