package screens_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/nfrund/lessonhub/internal/navigator"
	"github.com/nfrund/lessonhub/internal/screens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns a canned result from Complete.
type fakeProvider struct {
	result domain.ProviderResult
	err    error
	seen   domain.Callback
}

func (p *fakeProvider) Name() string { return "facebook" }

func (p *fakeProvider) AuthURL(state string, permissions []string) string {
	return "https://provider.test/auth?state=" + state
}

func (p *fakeProvider) Complete(ctx context.Context, cb domain.Callback) (domain.ProviderResult, error) {
	p.seen = cb
	return p.result, p.err
}

// fakeIdentity records the credential it was asked to exchange.
type fakeIdentity struct {
	identity domain.Identity
	err      error
	got      *domain.Credential
}

func (f *fakeIdentity) SignInWithCredential(ctx context.Context, cred domain.Credential) (domain.Identity, error) {
	f.got = &cred
	return f.identity, f.err
}

func newLogin(t *testing.T, deps screens.LoginDeps) (*screens.LoginScreen, *navigator.Navigator, *screens.AlertLog) {
	t.Helper()
	nav := navigator.New(navigator.Login)
	alerts := &screens.AlertLog{}
	deps.Nav = nav
	deps.Alerts = alerts
	return screens.NewLoginScreen(deps), nav, alerts
}

func TestSubmitLogin(t *testing.T) {
	t.Run("any empty field is a validation error with no navigation", func(t *testing.T) {
		inputs := [][2]string{{"", ""}, {"", "x"}, {"a@b.com", ""}}
		for _, in := range inputs {
			screen, nav, alerts := newLogin(t, screens.LoginDeps{})

			err := screen.SubmitLogin(in[0], in[1])

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.False(t, nav.Moved())
			assert.Equal(t, navigator.Login, nav.Current())
			assert.Equal(t, screens.LoginIdle, screen.State())

			last, ok := alerts.Last()
			require.True(t, ok)
			assert.Equal(t, "Error", last.Title)
			assert.Equal(t, "Please enter both email and password.", last.Message)
		}
	})

	t.Run("non-empty credentials always succeed", func(t *testing.T) {
		screen, nav, alerts := newLogin(t, screens.LoginDeps{})

		require.NoError(t, screen.SubmitLogin("someone@example.com", "wrong-password"))

		assert.Equal(t, navigator.Modules, nav.Current())
		assert.Equal(t, screens.LoginSucceeded, screen.State())
		assert.Equal(t, []screens.Alert{{
			Kind:    screens.AlertSuccess,
			Title:   "Login Successful",
			Message: "Welcome, someone@example.com!",
		}}, alerts.Alerts())
	})
}

func TestLoginWithFacebook(t *testing.T) {
	ctx := context.Background()

	t.Run("success exchanges the token and navigates", func(t *testing.T) {
		provider := &fakeProvider{result: domain.ProviderResult{Type: domain.ProviderSuccess, Token: "fb-token"}}
		identity := &fakeIdentity{identity: domain.Identity{Provider: "facebook", Subject: "42", Email: "a@b.com"}}
		screen, nav, alerts := newLogin(t, screens.LoginDeps{Provider: provider, Identity: identity})

		got, err := screen.LoginWithFacebook(ctx, domain.Callback{Code: "c", State: "s", ExpectedState: "s"})

		require.NoError(t, err)
		assert.Equal(t, "42", got.Subject)
		require.NotNil(t, identity.got)
		assert.Equal(t, domain.Credential{Provider: "facebook", Token: "fb-token"}, *identity.got)
		assert.Equal(t, "c", provider.seen.Code)
		assert.Equal(t, navigator.Modules, nav.Current())
		assert.Empty(t, alerts.Alerts())
	})

	t.Run("cancel is a non-fatal notice", func(t *testing.T) {
		provider := &fakeProvider{result: domain.ProviderResult{Type: domain.ProviderCancel}}
		identity := &fakeIdentity{}
		screen, nav, alerts := newLogin(t, screens.LoginDeps{Provider: provider, Identity: identity})

		_, err := screen.LoginWithFacebook(ctx, domain.Callback{Error: "access_denied"})

		assert.ErrorIs(t, err, domain.ErrProviderCancelled)
		assert.Nil(t, identity.got, "no exchange after cancel")
		assert.False(t, nav.Moved())
		last, _ := alerts.Last()
		assert.Equal(t, "Facebook login canceled", last.Title)
	})

	t.Run("provider failure surfaces its message", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("oauth2: server response missing access_token")}
		screen, nav, alerts := newLogin(t, screens.LoginDeps{Provider: provider, Identity: &fakeIdentity{}})

		_, err := screen.LoginWithFacebook(ctx, domain.Callback{Code: "c"})

		assert.ErrorIs(t, err, domain.ErrProvider)
		assert.False(t, nav.Moved())
		last, _ := alerts.Last()
		assert.Equal(t, "Facebook Login Error", last.Title)
		assert.Equal(t, "oauth2: server response missing access_token", last.Message)
	})

	t.Run("identity backend failure surfaces its message", func(t *testing.T) {
		provider := &fakeProvider{result: domain.ProviderResult{Type: domain.ProviderSuccess, Token: "t"}}
		identity := &fakeIdentity{err: errors.New("graph api: invalid token")}
		screen, nav, alerts := newLogin(t, screens.LoginDeps{Provider: provider, Identity: identity})

		_, err := screen.LoginWithFacebook(ctx, domain.Callback{Code: "c"})

		var perr *domain.ProviderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "sign in", perr.Op)
		assert.False(t, nav.Moved())
		last, _ := alerts.Last()
		assert.Equal(t, "graph api: invalid token", last.Message)
	})

	t.Run("missing provider is reported, not a panic", func(t *testing.T) {
		screen, _, alerts := newLogin(t, screens.LoginDeps{})

		_, err := screen.LoginWithFacebook(ctx, domain.Callback{})

		assert.ErrorIs(t, err, domain.ErrProvider)
		last, _ := alerts.Last()
		assert.Equal(t, "facebook login is not configured", last.Message)
	})
}

func TestForgotPasswordOverlay(t *testing.T) {
	t.Run("open and cancel", func(t *testing.T) {
		screen, _, _ := newLogin(t, screens.LoginDeps{})
		assert.Equal(t, screens.OverlayClosed, screen.Overlay())

		screen.OpenForgotPassword()
		assert.Equal(t, screens.OverlayOpen, screen.Overlay())

		screen.CloseForgotPassword()
		assert.Equal(t, domain.ForgotPasswordState{}, screen.Forgot())
	})

	t.Run("empty email keeps the overlay open", func(t *testing.T) {
		screen, nav, alerts := newLogin(t, screens.LoginDeps{})
		screen.OpenForgotPassword()

		code, err := screen.SendResetCode("")

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, code)
		assert.Equal(t, screens.OverlayOpen, screen.Overlay())
		assert.False(t, nav.Moved())
		last, _ := alerts.Last()
		assert.Equal(t, "Please enter your registered email.", last.Message)
	})

	t.Run("sending closes the overlay, clears the email and shows the code", func(t *testing.T) {
		screen, nav, alerts := newLogin(t, screens.LoginDeps{})
		screen.OpenForgotPassword()

		code, err := screen.SendResetCode("a@b.com")

		require.NoError(t, err)
		assert.Equal(t, screens.OverlayClosed, screen.Overlay())
		assert.Equal(t, "", screen.Forgot().ForgotEmail)
		assert.False(t, nav.Moved())

		n, err := strconv.Atoi(string(code))
		require.NoError(t, err)
		assert.True(t, n >= 100000 && n <= 999999)

		last, _ := alerts.Last()
		assert.Equal(t, "Verification Code Sent", last.Title)
		assert.True(t, strings.HasPrefix(last.Message, "Code: "+string(code)+"\n"))
	})

	t.Run("codes are drawn independently", func(t *testing.T) {
		draws := []int{0, 899999, 123456}
		i := 0
		screen, _, _ := newLogin(t, screens.LoginDeps{Intn: func(n int) int {
			v := draws[i]
			i++
			return v
		}})

		var got []domain.ResetCode
		for range draws {
			screen.OpenForgotPassword()
			code, err := screen.SendResetCode("a@b.com")
			require.NoError(t, err)
			got = append(got, code)
		}
		assert.Equal(t, []domain.ResetCode{"100000", "999999", "223456"}, got)
	})
}

func TestLoginLinks(t *testing.T) {
	screen, nav, alerts := newLogin(t, screens.LoginDeps{})

	screen.LoginWithGoogle()
	last, _ := alerts.Last()
	assert.Equal(t, "Google button pressed", last.Title)
	assert.False(t, nav.Moved())

	require.NoError(t, screen.GoToRegister())
	assert.Equal(t, navigator.Register, nav.Current())
}
