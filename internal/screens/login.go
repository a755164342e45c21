package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/nfrund/lessonhub/internal/flow"
	"github.com/nfrund/lessonhub/internal/navigator"
)

// LoginState is the submit state machine of the login screen.
type LoginState int

const (
	LoginIdle LoginState = iota
	LoginValidating
	LoginSucceeded
)

func (s LoginState) String() string {
	switch s {
	case LoginValidating:
		return "validating"
	case LoginSucceeded:
		return "succeeded"
	default:
		return "idle"
	}
}

// OverlayState is the forgot-password overlay sub-state. It moves
// independently of LoginState.
type OverlayState int

const (
	OverlayClosed OverlayState = iota
	OverlayOpen
)

// errFacebookNotConfigured is surfaced when no OAuth provider was wired in.
var errFacebookNotConfigured = errors.New("facebook login is not configured")

// LoginDeps are the collaborators of a LoginScreen. Provider and Identity may
// be nil, in which case social login reports a provider error.
type LoginDeps struct {
	Nav      Navigator
	Alerts   Alerter
	Provider domain.OAuthProvider
	Identity domain.IdentityBackend
	// Intn feeds reset code generation; nil uses math/rand/v2.
	Intn func(n int) int
}

// LoginScreen owns the login form and the forgot-password overlay. Its state
// lives only as long as the screen instance.
type LoginScreen struct {
	deps   LoginDeps
	form   domain.LoginForm
	forgot domain.ForgotPasswordState
	state  LoginState
}

// NewLoginScreen creates a login screen in the Idle state with the overlay closed.
func NewLoginScreen(deps LoginDeps) *LoginScreen {
	return &LoginScreen{deps: deps}
}

func (s *LoginScreen) Form() domain.LoginForm             { return s.form }
func (s *LoginScreen) Forgot() domain.ForgotPasswordState { return s.forgot }
func (s *LoginScreen) State() LoginState                  { return s.state }

// Overlay reports whether the forgot-password overlay is showing.
func (s *LoginScreen) Overlay() OverlayState {
	if s.forgot.Visible {
		return OverlayOpen
	}
	return OverlayClosed
}

// SubmitLogin accepts any non-empty email and password and moves to Modules.
// No credential check is made.
func (s *LoginScreen) SubmitLogin(email, password string) error {
	s.form = domain.LoginForm{Email: email, Password: password}
	s.state = LoginValidating

	if err := flow.ValidateLogin(s.form); err != nil {
		s.state = LoginIdle
		s.alert(AlertError, "Error", "Please enter both email and password.")
		return err
	}

	s.state = LoginSucceeded
	s.alert(AlertSuccess, "Login Successful", fmt.Sprintf("Welcome, %s!", email))
	return s.deps.Nav.Navigate(navigator.Modules)
}

// LoginWithFacebook finishes the OAuth round trip described by cb, exchanges
// the token for an identity and moves to Modules. A cancel or a failure only
// raises an alert; the screen stays where it is.
func (s *LoginScreen) LoginWithFacebook(ctx context.Context, cb domain.Callback) (domain.Identity, error) {
	if s.deps.Provider == nil || s.deps.Identity == nil {
		return domain.Identity{}, s.providerFailed("configure", errFacebookNotConfigured)
	}

	res, err := s.deps.Provider.Complete(ctx, cb)
	if err != nil {
		return domain.Identity{}, s.providerFailed("authorize", err)
	}
	if res.Type != domain.ProviderSuccess {
		s.alert(AlertInfo, "Facebook login canceled", "")
		return domain.Identity{}, domain.ErrProviderCancelled
	}

	cred := domain.Credential{Provider: s.deps.Provider.Name(), Token: res.Token}
	identity, err := s.deps.Identity.SignInWithCredential(ctx, cred)
	if err != nil {
		return domain.Identity{}, s.providerFailed("sign in", err)
	}

	if err := s.deps.Nav.Navigate(navigator.Modules); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

// LoginWithGoogle is a placeholder button; it only acknowledges the press.
func (s *LoginScreen) LoginWithGoogle() {
	s.alert(AlertInfo, "Google button pressed", "")
}

// GoToRegister follows the "Register Now" link.
func (s *LoginScreen) GoToRegister() error {
	return s.deps.Nav.Navigate(navigator.Register)
}

// OpenForgotPassword shows the overlay.
func (s *LoginScreen) OpenForgotPassword() {
	s.forgot.Visible = true
}

// CloseForgotPassword dismisses the overlay and drops the captured email.
func (s *LoginScreen) CloseForgotPassword() {
	s.forgot.Reset()
}

// SendResetCode shows a fresh six digit code for email, then closes the overlay.
// The code is not delivered anywhere. An empty email keeps the overlay as it is.
func (s *LoginScreen) SendResetCode(email string) (domain.ResetCode, error) {
	s.forgot.ForgotEmail = email

	if err := flow.ValidateForgotEmail(email); err != nil {
		s.alert(AlertError, "Error", "Please enter your registered email.")
		return "", err
	}

	code := flow.NewResetCode(s.deps.Intn)
	s.alert(AlertInfo, "Verification Code Sent", fmt.Sprintf("Code: %s\nPlease check your email.", code))
	s.forgot.Reset()
	return code, nil
}

func (s *LoginScreen) providerFailed(op string, err error) error {
	var perr *domain.ProviderError
	if !errors.As(err, &perr) {
		perr = &domain.ProviderError{Op: op, Err: err}
	}
	s.alert(AlertError, "Facebook Login Error", perr.Error())
	return perr
}

func (s *LoginScreen) alert(kind AlertKind, title, message string) {
	if s.deps.Alerts != nil {
		s.deps.Alerts.Alert(Alert{Kind: kind, Title: title, Message: message})
	}
}
