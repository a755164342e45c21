package pages

import (
	"github.com/nfrund/lessonhub/internal/view/dto/auth"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Register renders the registration screen.
func Register(data auth.RegisterData) g.Node {
	return h.Div(
		h.H1(g.Text("Register Now!")),
		h.P(h.Class("subtitle"), g.Text("Enter your information below")),

		h.Form(h.Method("post"), h.Action("/register"),
			h.Input(h.Class("input"), h.Type("text"), h.Name("name"), h.Placeholder("Name"), h.Value(data.Name)),
			textInput("email", "Email Address", data.Email, "email"),
			h.Input(h.Class("input"), h.Type("password"), h.Name("password"), h.Placeholder("Enter Password")),
			h.Input(h.Class("input"), h.Type("password"), h.Name("confirm_password"), h.Placeholder("Re-Enter Password")),
			h.Button(h.Class("primary"), h.Type("submit"), g.Text("Register")),
		),

		h.P(h.Class("footer-link"),
			g.Text("Already a member? "),
			h.A(h.Href("/login"), g.Text("Login")),
		),
	)
}
