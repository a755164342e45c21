package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/navigator"
	"github.com/nfrund/lessonhub/internal/screens"
	"github.com/nfrund/lessonhub/internal/view/dto/modules"
	"github.com/nfrund/lessonhub/web/src/templates/pages"
)

// ModulesGet renders the module picker (GET /modules). There are no guards;
// anyone may open it.
func ModulesGet(c echo.Context) error {
	screen := screens.NewModulesScreen()
	saveActiveRoute(c, navigator.Modules)
	return renderPage(c, "Modules", pages.Modules(modules.ModulesData{Options: screen.Options()}))
}
