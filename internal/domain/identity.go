package domain

import "context"

// ProviderResultType discriminates the outcome of an OAuth round trip.
type ProviderResultType string

const (
	ProviderSuccess ProviderResultType = "success"
	ProviderCancel  ProviderResultType = "cancel"
)

// FacebookPermissions are the read permissions requested for social login.
var FacebookPermissions = []string{"public_profile", "email"}

// ProviderResult is what an OAuth provider hands back. Token is only set on success.
type ProviderResult struct {
	Type  ProviderResultType
	Token string
}

// Callback carries the query parameters the provider redirected back with.
type Callback struct {
	Code          string
	State         string
	ExpectedState string
	Error         string
	ErrorReason   string
}

// Credential is an opaque provider token waiting to be exchanged for an Identity.
type Credential struct {
	Provider string
	Token    string
}

// Identity is the application-recognized assertion produced by the identity backend.
type Identity struct {
	Provider string
	Subject  string
	Name     string
	Email    string
}

// OAuthProvider is the external social login capability.
type OAuthProvider interface {
	// Name identifies the provider in credentials and events (e.g. "facebook").
	Name() string
	// AuthURL is where the user is sent to grant the requested permissions.
	AuthURL(state string, permissions []string) string
	// Complete finishes the round trip started by AuthURL.
	Complete(ctx context.Context, cb Callback) (ProviderResult, error)
}

// IdentityBackend exchanges a provider credential for an application identity.
type IdentityBackend interface {
	SignInWithCredential(ctx context.Context, cred Credential) (Identity, error)
}
