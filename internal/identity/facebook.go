// Package identity talks to the external social login provider and the
// identity backend that turns its tokens into application identities.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/nfrund/lessonhub/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

// ProviderFacebook is the provider name carried on credentials.
const ProviderFacebook = "facebook"

var (
	// ErrStateMismatch means the callback's state does not match the one we issued.
	ErrStateMismatch = errors.New("oauth state mismatch")
	// ErrMissingCode means the provider redirected back without an authorization code.
	ErrMissingCode = errors.New("authorization code missing from callback")
)

// FacebookConfig configures the Facebook OAuth client.
type FacebookConfig struct {
	AppID       string
	AppSecret   string
	RedirectURL string
	// Endpoint overrides the Facebook endpoint; tests point it at an httptest server.
	Endpoint *oauth2.Endpoint
	// HTTPClient is used for the code exchange when set.
	HTTPClient *http.Client
}

// Facebook implements domain.OAuthProvider with the authorization code flow.
type Facebook struct {
	oauth  *oauth2.Config
	client *http.Client
}

// NewFacebook creates a Facebook provider requesting the default read permissions.
func NewFacebook(cfg FacebookConfig) *Facebook {
	endpoint := facebook.Endpoint
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}

	return &Facebook{
		oauth: &oauth2.Config{
			ClientID:     cfg.AppID,
			ClientSecret: cfg.AppSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       domain.FacebookPermissions,
		},
		client: cfg.HTTPClient,
	}
}

func (f *Facebook) Name() string { return ProviderFacebook }

// AuthURL returns the Facebook dialog URL for the given state and permissions.
func (f *Facebook) AuthURL(state string, permissions []string) string {
	cfg := *f.oauth
	if len(permissions) > 0 {
		cfg.Scopes = permissions
	}
	return cfg.AuthCodeURL(state)
}

// Complete turns the callback into a ProviderResult. A user who declines the
// dialog comes back with error=access_denied, which is a cancel rather than an error.
func (f *Facebook) Complete(ctx context.Context, cb domain.Callback) (domain.ProviderResult, error) {
	if cb.Error != "" {
		if cb.Error == "access_denied" {
			return domain.ProviderResult{Type: domain.ProviderCancel}, nil
		}
		if cb.ErrorReason != "" {
			return domain.ProviderResult{}, fmt.Errorf("facebook: %s (%s)", cb.Error, cb.ErrorReason)
		}
		return domain.ProviderResult{}, fmt.Errorf("facebook: %s", cb.Error)
	}

	if cb.ExpectedState == "" || cb.State != cb.ExpectedState {
		return domain.ProviderResult{}, ErrStateMismatch
	}
	if cb.Code == "" {
		return domain.ProviderResult{}, ErrMissingCode
	}

	if f.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, f.client)
	}
	tok, err := f.oauth.Exchange(ctx, cb.Code)
	if err != nil {
		return domain.ProviderResult{}, fmt.Errorf("facebook code exchange: %w", err)
	}

	return domain.ProviderResult{Type: domain.ProviderSuccess, Token: tok.AccessToken}, nil
}
