package handlers

// LoginRequest is the login form body.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// ForgotPasswordRequest is the reset code overlay form body.
type ForgotPasswordRequest struct {
	Email string `form:"forgot_email"`
}

// RegisterRequest is the registration form body.
type RegisterRequest struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// FacebookCallbackRequest holds the query parameters Facebook redirects back with.
type FacebookCallbackRequest struct {
	Code        string `query:"code"`
	State       string `query:"state"`
	Error       string `query:"error"`
	ErrorReason string `query:"error_reason"`
}
