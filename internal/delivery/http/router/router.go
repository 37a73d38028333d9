// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"arena/internal/delivery/http/middleware"
	"arena/internal/delivery/http/router/handler"
	"arena/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OAuthHandler   *handler.OAuthHandler
	SessionHandler *handler.SessionHandler
	TOTPHandler    *handler.TOTPHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	oauthHandler   *handler.OAuthHandler
	sessionHandler *handler.SessionHandler
	totpHandler    *handler.TOTPHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		oauthHandler:   params.OAuthHandler,
		sessionHandler: params.SessionHandler,
		totpHandler:    params.TOTPHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.NewHandler(r.registry)))
	}

	// Federated login
	oauthGroup := e.Group("/api/oauth2")
	{
		oauthGroup.GET("/:provider", r.oauthHandler.Start)
		oauthGroup.GET("/:provider/callback", r.oauthHandler.Callback)
	}

	e.POST("/login", r.sessionHandler.Login)
	e.POST("/logout", r.sessionHandler.Logout, r.authMiddleware.Authenticate)
	e.GET("/api/session", r.sessionHandler.Current, r.authMiddleware.Authenticate)

	// Second factor, always for the caller's own account
	totpGroup := e.Group("/api/totp")
	totpGroup.Use(r.authMiddleware.Authenticate)
	{
		totpGroup.POST("/reset", r.totpHandler.Reset)
		totpGroup.POST("/validate", r.totpHandler.Validate)
		totpGroup.POST("/remove", r.totpHandler.Remove)
	}
}
