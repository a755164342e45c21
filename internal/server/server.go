package server

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/lessonhub/internal/app"
	"github.com/nfrund/lessonhub/internal/config"
	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/nfrund/lessonhub/internal/identity"
	appmiddleware "github.com/nfrund/lessonhub/internal/middleware"
	"github.com/nfrund/lessonhub/internal/module"
	"github.com/nfrund/lessonhub/internal/pubsub"
	"github.com/nfrund/lessonhub/internal/registry"
	"github.com/nfrund/lessonhub/internal/rendering"
)

const busBufferSize = 64

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	Bus     *pubsub.WatermillBridge
	modules []module.Module
	reg     *registry.Registry
	cancel  context.CancelFunc
}

// New creates a Server with every module registered and booted. The caller
// must call Shutdown (Start does it on signal) to stop background work.
func New(cfg config.Provider) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	bus := pubsub.NewWatermillBridge(busBufferSize)
	provider, backend := newFacebook(cfg)

	s := &Server{
		E:   e,
		Cfg: cfg,
		Bus: bus,
		reg: registry.New(cfg),
		modules: app.NewModules(app.Dependencies{
			Publisher:     bus,
			Subscriber:    bus,
			Logger:        slog.Default(),
			Provider:      provider,
			Identity:      backend,
			RatePerMinute: cfg.GetRateLimit(),
		}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	if err := module.Start(ctx, s.modules, e.Group(""), s.reg); err != nil {
		cancel()
		_ = bus.Close()
		return nil, err
	}
	return s, nil
}

// newFacebook wires Facebook login when an app secret is configured. Without
// one the screens still render and the button reports a provider error.
func newFacebook(cfg config.Provider) (domain.OAuthProvider, domain.IdentityBackend) {
	if cfg.GetFacebookAppSecret() == "" {
		slog.Warn("FACEBOOK_APP_SECRET not set, Facebook login disabled")
		return nil, nil
	}
	provider := identity.NewFacebook(identity.FacebookConfig{
		AppID:       cfg.GetFacebookAppID(),
		AppSecret:   cfg.GetFacebookAppSecret(),
		RedirectURL: strings.TrimRight(cfg.GetAppBaseURL(), "/") + "/auth/facebook/callback",
	})
	return provider, identity.NewGraph(cfg.GetFacebookGraphURL(), nil)
}

// setupErrorHandling logs unhandled errors with a stack trace before handing
// them to echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if _, ok := err.(*echo.HTTPError); !ok {
			appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
