package screens

import (
	"errors"
	"fmt"

	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/nfrund/lessonhub/internal/flow"
	"github.com/nfrund/lessonhub/internal/navigator"
)

// RegisterScreen owns the registration form. Registration is local only; no
// backend is consulted.
type RegisterScreen struct {
	nav    Navigator
	alerts Alerter
	form   domain.RegisterForm
}

// NewRegisterScreen creates an empty registration screen.
func NewRegisterScreen(nav Navigator, alerts Alerter) *RegisterScreen {
	return &RegisterScreen{nav: nav, alerts: alerts}
}

func (s *RegisterScreen) Form() domain.RegisterForm { return s.form }

// SubmitRegister requires all four fields and a matching confirmation, then
// moves to Modules.
func (s *RegisterScreen) SubmitRegister(name, email, password, confirmPassword string) error {
	s.form = domain.RegisterForm{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}

	err := flow.ValidateRegister(s.form)
	switch {
	case errors.Is(err, domain.ErrValidation):
		s.alert(AlertError, "Error", "Please fill all fields.")
		return err
	case errors.Is(err, domain.ErrMismatch):
		s.alert(AlertError, "Error", "Passwords do not match.")
		return err
	case err != nil:
		return err
	}

	s.alert(AlertSuccess, "Registration Successful", fmt.Sprintf("Welcome, %s!", name))
	return s.nav.Navigate(navigator.Modules)
}

// GoToLogin follows the "Already a member? Login" link.
func (s *RegisterScreen) GoToLogin() error {
	return s.nav.Navigate(navigator.Login)
}

func (s *RegisterScreen) alert(kind AlertKind, title, message string) {
	if s.alerts != nil {
		s.alerts.Alert(Alert{Kind: kind, Title: title, Message: message})
	}
}
