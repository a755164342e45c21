package domain

// LoginForm is the credential input owned by the login screen.
type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is the input owned by the registration screen.
type RegisterForm struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// ForgotPasswordState is the overlay sub-state of the login screen.
// Visible is the Open/Closed flag; ForgotEmail is the captured address.
type ForgotPasswordState struct {
	Visible     bool
	ForgotEmail string
}

// Reset clears the overlay back to Closed with no captured email.
func (s *ForgotPasswordState) Reset() {
	s.Visible = false
	s.ForgotEmail = ""
}

// ResetCode is a six digit numeric code shown to the user. It is never
// delivered, stored, or verified.
type ResetCode string

const (
	// ResetCodeMin and ResetCodeMax bound every generated code, inclusive.
	ResetCodeMin = 100000
	ResetCodeMax = 999999
)
