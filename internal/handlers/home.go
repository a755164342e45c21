package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/navigator"
)

// HomeGet sends the browser to the active route (GET /). A first visit lands on Login.
func HomeGet(c echo.Context) error {
	path, _ := navigator.Path(activeRoute(c))
	return c.Redirect(http.StatusSeeOther, path)
}
