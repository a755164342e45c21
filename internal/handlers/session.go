package handlers

import (
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/navigator"
)

const (
	navSessionName   = "nav-session"
	navKeyRoute      = "route"
	oauthSessionName = "oauth-session"
	oauthKeyState    = "facebook_state"
)

// activeRoute is the route the browser was last sent to, or navigator.Initial.
func activeRoute(c echo.Context) navigator.Route {
	sess, err := session.Get(navSessionName, c)
	if err != nil || sess == nil {
		return navigator.Initial
	}
	name, _ := sess.Values[navKeyRoute].(string)
	route, err := navigator.Parse(name)
	if err != nil {
		return navigator.Initial
	}
	return route
}

// saveActiveRoute remembers r so "/" can return to it.
func saveActiveRoute(c echo.Context, r navigator.Route) {
	sess, err := session.Get(navSessionName, c)
	if sess == nil {
		slog.Warn("Failed to load navigation session", "error", err)
		return
	}
	sess.Values[navKeyRoute] = string(r)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save navigation session", "error", err)
	}
}

// setOAuthState stores the state value sent to the provider.
func setOAuthState(c echo.Context, state string) error {
	sess, err := session.Get(oauthSessionName, c)
	if sess == nil {
		return err
	}
	sess.Values[oauthKeyState] = state
	sess.Options.MaxAge = 600
	return sess.Save(c.Request(), c.Response())
}

// consumeOAuthState returns the stored state and removes it, so a callback
// can only be completed once.
func consumeOAuthState(c echo.Context) string {
	sess, _ := session.Get(oauthSessionName, c)
	if sess == nil {
		return ""
	}
	state, _ := sess.Values[oauthKeyState].(string)
	delete(sess.Values, oauthKeyState)
	_ = sess.Save(c.Request(), c.Response())
	return state
}
