package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/middleware"
	"github.com/nfrund/lessonhub/internal/navigator"
	"github.com/nfrund/lessonhub/internal/screens"
	"github.com/nfrund/lessonhub/internal/view"
	"github.com/nfrund/lessonhub/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// renderPage wraps content in the base layout with any pending alerts.
func renderPage(c echo.Context, title string, content g.Node) error {
	flashes := view.GetFlashData(c)
	page := layouts.Base(c.Request().Context(), title, flashes, content)
	return c.Render(http.StatusOK, "", page)
}

// renderFragment renders a bare component for htmx swaps.
func renderFragment(c echo.Context, content g.Node) error {
	return c.Render(http.StatusOK, "", content)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// finish turns a screen action into a response: alerts are flashed, and the
// browser is sent to the new route if the screen navigated, or back to stay otherwise.
func finish(c echo.Context, nav *navigator.Navigator, alerts *screens.AlertLog, stay string) error {
	view.SetAlerts(c, alerts.Alerts()...)

	if !nav.Moved() {
		return c.Redirect(http.StatusSeeOther, stay)
	}

	route := nav.Current()
	path, ok := navigator.Path(route)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "no path for route "+string(route))
	}
	saveActiveRoute(c, route)
	return c.Redirect(http.StatusSeeOther, path)
}

// rejectForm handles a request whose body could not be bound: the user is
// sent back to stay with a generic error alert.
func rejectForm(c echo.Context, err error, stay string) error {
	middleware.FromContext(c.Request().Context()).Warn("Failed to bind request", "error", err)
	view.SetFlashError(c, "Invalid form submission.")
	return c.Redirect(http.StatusSeeOther, stay)
}
