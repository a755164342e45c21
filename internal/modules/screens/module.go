// Package screens mounts the Login, Register and Modules screens.
package screens

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/nfrund/lessonhub/internal/handlers"
	"github.com/nfrund/lessonhub/internal/middleware"
	"github.com/nfrund/lessonhub/internal/module"
	"github.com/nfrund/lessonhub/internal/modules/activitylog"
	"github.com/nfrund/lessonhub/internal/registry"
)

// Dependencies holds the services required by the screens module. Provider
// and Identity are nil when Facebook login is not configured.
type Dependencies struct {
	Provider domain.OAuthProvider
	Identity domain.IdentityBackend
	// RatePerMinute limits form submissions per client; zero disables it.
	RatePerMinute int
}

// Module serves the screen flow over HTTP.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *handlers.AuthHandler
}

// New creates the screens module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "screens"
}

// Boot registers the screen routes. Activity is recorded when the activity
// log module registered a Recorder.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	recorder, _ := registry.Get(reg, activitylog.RecorderKey)

	m.handler = handlers.NewAuthHandler(handlers.AuthDeps{
		Provider: m.deps.Provider,
		Identity: m.deps.Identity,
		Recorder: recorder,
	})

	var limit []echo.MiddlewareFunc
	if m.deps.RatePerMinute > 0 {
		limit = append(limit, middleware.RateLimiter(m.deps.RatePerMinute))
	}

	g.GET("/", handlers.HomeGet)

	g.GET("/login", m.handler.LoginGet)
	g.POST("/login", m.handler.LoginPost, limit...)
	g.GET("/login/forgot", m.handler.ForgotPasswordGet)
	g.POST("/login/forgot", m.handler.ForgotPasswordPost, limit...)
	g.POST("/login/forgot/cancel", m.handler.ForgotPasswordCancel)
	g.POST("/login/google", m.handler.GooglePost)

	g.GET("/auth/facebook", m.handler.FacebookStart)
	g.GET("/auth/facebook/callback", m.handler.FacebookCallback)

	g.GET("/register", m.handler.RegisterGet)
	g.POST("/register", m.handler.RegisterPost, limit...)

	g.GET("/modules", handlers.ModulesGet)
	return nil
}
