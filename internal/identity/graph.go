package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nfrund/lessonhub/internal/domain"
	"golang.org/x/oauth2"
)

// ErrEmptyToken is returned when a credential carries no token.
var ErrEmptyToken = errors.New("credential has no token")

// Graph exchanges a Facebook credential for an Identity by asking the Graph
// API who the token belongs to.
type Graph struct {
	baseURL string
	client  *http.Client
}

// NewGraph creates a Graph backend. client may be nil.
func NewGraph(baseURL string, client *http.Client) *Graph {
	return &Graph{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type graphUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SignInWithCredential implements domain.IdentityBackend.
func (g *Graph) SignInWithCredential(ctx context.Context, cred domain.Credential) (domain.Identity, error) {
	if cred.Provider != ProviderFacebook {
		return domain.Identity{}, fmt.Errorf("unsupported credential provider %q", cred.Provider)
	}
	if cred.Token == "" {
		return domain.Identity{}, ErrEmptyToken
	}

	if g.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, g.client)
	}
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cred.Token}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/me?fields=id,name,email", nil)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("build graph request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("graph api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("read graph response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var gerr graphError
		if json.Unmarshal(body, &gerr) == nil && gerr.Error.Message != "" {
			return domain.Identity{}, fmt.Errorf("graph api: %s", gerr.Error.Message)
		}
		return domain.Identity{}, fmt.Errorf("graph api: status %d", resp.StatusCode)
	}

	var user graphUser
	if err := json.Unmarshal(body, &user); err != nil {
		return domain.Identity{}, fmt.Errorf("decode graph user: %w", err)
	}
	if user.ID == "" {
		return domain.Identity{}, errors.New("graph api: response missing user id")
	}

	return domain.Identity{
		Provider: ProviderFacebook,
		Subject:  user.ID,
		Name:     user.Name,
		Email:    user.Email,
	}, nil
}
