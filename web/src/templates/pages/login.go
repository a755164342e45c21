package pages

import (
	"github.com/nfrund/lessonhub/internal/view/dto/auth"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Login renders the login screen. The forgot-password overlay is included
// when data.OverlayOpen is set; htmx can also swap it into #overlay later.
func Login(data auth.LoginData) g.Node {
	return h.Div(
		h.H1(g.Text("Let’s get you Login!")),
		h.P(h.Class("subtitle"), g.Text("Enter your information below")),

		h.Div(h.Class("social"),
			h.Form(h.Method("post"), h.Action("/login/google"),
				h.Button(h.Type("submit"), g.Text("Gmail")),
			),
			g.If(data.FacebookEnabled,
				h.A(h.Href("/auth/facebook"), g.Text("Facebook")),
			),
		),

		h.Div(h.Class("divider"), g.Text("Or login with")),

		h.Form(h.Method("post"), h.Action("/login"),
			textInput("email", "Enter Email", data.Email, "email"),
			h.Input(h.Class("input"), h.Type("password"), h.Name("password"), h.Placeholder("Enter Password")),
			h.A(h.Class("forgot"), h.Href("/login?overlay=forgot"),
				hx.Get("/login/forgot"), hx.Target("#overlay"), hx.Swap("innerHTML"),
				g.Text("Forgot Password?"),
			),
			h.Button(h.Class("primary"), h.Type("submit"), g.Text("Login")),
		),

		h.P(h.Class("footer-link"),
			g.Text("Don’t have an account? "),
			h.A(h.Href("/register"), g.Text("Register Now")),
		),

		h.Div(h.ID("overlay"),
			g.If(data.OverlayOpen, ForgotPasswordOverlay(data.ForgotEmail)),
		),
	)
}

// ForgotPasswordOverlay is the reset-code sheet. It is also served alone as an htmx fragment.
func ForgotPasswordOverlay(email string) g.Node {
	return h.Div(h.Class("overlay"),
		h.Div(h.Class("sheet"),
			h.H2(g.Text("Forgot Password")),
			h.P(h.Class("subtitle"), g.Text("Input registered email to send verification code.")),
			h.Form(h.Method("post"), h.Action("/login/forgot"),
				textInput("forgot_email", "Enter your email", email, "email"),
				h.Button(h.Class("primary"), h.Type("submit"), g.Text("Send Code")),
			),
			h.Form(h.Method("post"), h.Action("/login/forgot/cancel"),
				hx.Post("/login/forgot/cancel"), hx.Target("#overlay"), hx.Swap("innerHTML"),
				h.Button(h.Class("link-button"), h.Type("submit"), g.Text("Cancel")),
			),
		),
	)
}

func textInput(name, placeholder, value, inputMode string) g.Node {
	return h.Input(
		h.Class("input"),
		h.Type("text"),
		h.Name(name),
		h.Placeholder(placeholder),
		h.Value(value),
		g.If(inputMode != "", g.Attr("inputmode", inputMode)),
		g.Attr("autocapitalize", "none"),
	)
}
