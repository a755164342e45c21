package pages

import (
	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/nfrund/lessonhub/internal/view/dto/modules"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Modules renders the module picker. The buttons are not wired to anything yet.
func Modules(data modules.ModulesData) g.Node {
	return h.Div(
		h.H1(g.Text("Select your modules")),
		h.P(h.Class("subtitle"), g.Text("Choose your interest")),

		h.Div(h.Class("modules"),
			g.Map(data.Options, func(opt domain.ModuleOption) g.Node {
				return h.Button(h.Class("module"), h.Type("button"), h.Data("module", opt.Slug), g.Text(opt.Label))
			}),
		),

		h.Div(h.Class("next"),
			h.Button(h.Class("primary"), h.Type("button"), g.Text("Next")),
		),
	)
}
