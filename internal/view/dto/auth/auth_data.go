package auth

// LoginData is the view model for the login page.
type LoginData struct {
	Email string
	// OverlayOpen renders the forgot-password overlay on top of the form.
	OverlayOpen bool
	ForgotEmail string
	// FacebookEnabled hides the Facebook button when no app secret is configured.
	FacebookEnabled bool
}

// RegisterData is the view model for the registration page. Passwords are
// never echoed back.
type RegisterData struct {
	Name  string
	Email string
}
