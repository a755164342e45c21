package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/activity"
	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/nfrund/lessonhub/internal/middleware"
	"github.com/nfrund/lessonhub/internal/navigator"
	"github.com/nfrund/lessonhub/internal/screens"
	"github.com/nfrund/lessonhub/internal/view"
	"github.com/nfrund/lessonhub/internal/view/dto/auth"
	"github.com/nfrund/lessonhub/web/src/templates/pages"
)

// AuthDeps are the collaborators of AuthHandler. Provider and Identity are nil
// when Facebook login is not configured.
type AuthDeps struct {
	Provider domain.OAuthProvider
	Identity domain.IdentityBackend
	Recorder *activity.Recorder
	// Intn overrides reset code randomness in tests.
	Intn func(n int) int
}

// AuthHandler serves the login and registration screens. Every request gets
// fresh screen instances; alerts become flash messages and navigation becomes
// a redirect.
type AuthHandler struct {
	deps AuthDeps
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(deps AuthDeps) *AuthHandler {
	return &AuthHandler{deps: deps}
}

// loginScreen builds a login screen sitting on the Login route.
func (h *AuthHandler) loginScreen() (*screens.LoginScreen, *navigator.Navigator, *screens.AlertLog) {
	nav := navigator.New(navigator.Login)
	alerts := &screens.AlertLog{}
	screen := screens.NewLoginScreen(screens.LoginDeps{
		Nav:      nav,
		Alerts:   alerts,
		Provider: h.deps.Provider,
		Identity: h.deps.Identity,
		Intn:     h.deps.Intn,
	})
	return screen, nav, alerts
}

// LoginGet renders the login page (GET /login). ?overlay=forgot opens the
// forgot-password overlay.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	screen, _, _ := h.loginScreen()
	if c.QueryParam("overlay") == "forgot" {
		screen.OpenForgotPassword()
	}

	prefill := view.GetFormPrefill(c, "email", "forgot_email")
	saveActiveRoute(c, navigator.Login)

	data := auth.LoginData{
		Email:           prefill["email"],
		OverlayOpen:     screen.Overlay() == screens.OverlayOpen,
		ForgotEmail:     prefill["forgot_email"],
		FacebookEnabled: h.deps.Provider != nil,
	}
	return renderPage(c, "Login", pages.Login(data))
}

// LoginPost handles the login form (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return rejectForm(c, err, "/login")
	}

	screen, nav, alerts := h.loginScreen()
	err := screen.SubmitLogin(req.Email, req.Password)
	logger := middleware.FromContext(c.Request().Context())

	switch {
	case errors.Is(err, domain.ErrValidation):
		logger.Debug("Login form incomplete", "error", err)
		view.SetFormPrefill(c, map[string]string{"email": req.Email})
	case err != nil:
		return err
	default:
		logger.Info("Login accepted", "method", activity.MethodPassword)
		logger.Debug("Login accepted for user", "email", req.Email)
		h.deps.Recorder.Login(c.Request().Context(), req.Email, activity.MethodPassword, "")
	}

	return finish(c, nav, alerts, "/login")
}

// ForgotPasswordGet opens the overlay (GET /login/forgot). htmx requests get
// the overlay fragment; plain requests are sent to the full page.
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	screen, _, _ := h.loginScreen()
	screen.OpenForgotPassword()

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/login?overlay=forgot")
	}
	return renderFragment(c, pages.ForgotPasswordOverlay(screen.Forgot().ForgotEmail))
}

// ForgotPasswordCancel dismisses the overlay (POST /login/forgot/cancel).
func (h *AuthHandler) ForgotPasswordCancel(c echo.Context) error {
	screen, _, _ := h.loginScreen()
	screen.CloseForgotPassword()

	if isHTMX(c) {
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// ForgotPasswordPost shows a reset code (POST /login/forgot). Nothing is sent.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return rejectForm(c, err, "/login?overlay=forgot")
	}

	screen, nav, alerts := h.loginScreen()
	screen.OpenForgotPassword()

	if _, err := screen.SendResetCode(req.Email); err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			return err
		}
		view.SetAlerts(c, alerts.Alerts()...)
		return c.Redirect(http.StatusSeeOther, "/login?overlay=forgot")
	}

	h.deps.Recorder.ResetCode(c.Request().Context(), req.Email)
	return finish(c, nav, alerts, "/login")
}

// GooglePost handles the Gmail button (POST /login/google), which is a placeholder.
func (h *AuthHandler) GooglePost(c echo.Context) error {
	screen, nav, alerts := h.loginScreen()
	screen.LoginWithGoogle()
	return finish(c, nav, alerts, "/login")
}

// FacebookStart sends the browser to the Facebook permission dialog
// (GET /auth/facebook).
func (h *AuthHandler) FacebookStart(c echo.Context) error {
	if h.deps.Provider == nil {
		// Let the screen report the missing configuration.
		screen, nav, alerts := h.loginScreen()
		_, _ = screen.LoginWithFacebook(c.Request().Context(), domain.Callback{})
		return finish(c, nav, alerts, "/login")
	}

	state := uuid.NewString()
	if err := setOAuthState(c, state); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, h.deps.Provider.AuthURL(state, domain.FacebookPermissions))
}

// FacebookCallback completes social login (GET /auth/facebook/callback).
func (h *AuthHandler) FacebookCallback(c echo.Context) error {
	var req FacebookCallbackRequest
	if err := c.Bind(&req); err != nil {
		return rejectForm(c, err, "/login")
	}

	cb := domain.Callback{
		Code:          req.Code,
		State:         req.State,
		ExpectedState: consumeOAuthState(c),
		Error:         req.Error,
		ErrorReason:   req.ErrorReason,
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	screen, nav, alerts := h.loginScreen()
	identity, err := screen.LoginWithFacebook(ctx, cb)
	switch {
	case errors.Is(err, domain.ErrProviderCancelled):
		logger.Info("Facebook login cancelled")
	case errors.Is(err, domain.ErrProvider):
		logger.Warn("Facebook login failed", "error", err)
	case err != nil:
		return err
	default:
		logger.Info("Facebook login accepted", "subject", identity.Subject)
		h.deps.Recorder.Login(ctx, identity.Email, activity.MethodFacebook, identity.Subject)
	}

	return finish(c, nav, alerts, "/login")
}

// RegisterGet renders the registration page (GET /register).
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	prefill := view.GetFormPrefill(c, "name", "email")
	saveActiveRoute(c, navigator.Register)

	data := auth.RegisterData{
		Name:  prefill["name"],
		Email: prefill["email"],
	}
	return renderPage(c, "Register", pages.Register(data))
}

// RegisterPost handles the registration form (POST /register).
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return rejectForm(c, err, "/register")
	}

	nav := navigator.New(navigator.Register)
	alerts := &screens.AlertLog{}
	screen := screens.NewRegisterScreen(nav, alerts)

	err := screen.SubmitRegister(req.Name, req.Email, req.Password, req.ConfirmPassword)
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrMismatch):
		middleware.FromContext(c.Request().Context()).Debug("Registration rejected", "error", err)
		view.SetFormPrefill(c, map[string]string{"name": req.Name, "email": req.Email})
	case err != nil:
		return err
	default:
		h.deps.Recorder.Registration(c.Request().Context(), req.Name, req.Email)
	}

	return finish(c, nav, alerts, "/register")
}
