// Package oauth implements the external identity-provider collaborator.
// Identity is delegated to Google: the provider hands back an authorization
// code, which is exchanged here for the signed-in user's profile.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

const exchangeTimeout = 15 * time.Second

// Config holds the Google OAuth application settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleProvider implements ports.OAuthProvider against Google's OAuth 2.0
// endpoints.
type GoogleProvider struct {
	cfg         Config
	client      *http.Client
	authURL     string
	tokenURL    string
	userinfoURL string
}

func NewGoogleProvider(cfg Config) *GoogleProvider {
	return &GoogleProvider{
		cfg:         cfg,
		client:      &http.Client{Timeout: exchangeTimeout},
		authURL:     "https://accounts.google.com/o/oauth2/v2/auth",
		tokenURL:    "https://oauth2.googleapis.com/token",
		userinfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
	}
}

// NewGoogleProviderWithEndpoints is used by tests to point the provider at a
// local server.
func NewGoogleProviderWithEndpoints(cfg Config, authURL, tokenURL, userinfoURL string) *GoogleProvider {
	p := NewGoogleProvider(cfg)
	p.authURL = authURL
	p.tokenURL = tokenURL
	p.userinfoURL = userinfoURL
	return p
}

// AuthCodeURL builds the consent URL the user is redirected to.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", p.cfg.ClientID)
	q.Set("redirect_uri", p.cfg.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	q.Set("prompt", "consent")
	q.Set("access_type", "offline")
	return p.authURL + "?" + q.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type userinfoResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Exchange trades an authorization code for the user's profile. A rejected
// code maps to ErrUnauthenticated; transport or provider failures map to
// ErrExternalService.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*ports.Profile, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", p.cfg.ClientID)
	form.Set("client_secret", p.cfg.ClientSecret)
	form.Set("redirect_uri", p.cfg.RedirectURL)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: build token request: %v", domain.ErrExternalService, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange: %v", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, fmt.Errorf("%w: authorization code rejected", domain.ErrUnauthenticated)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: token endpoint status %d", domain.ErrExternalService, resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("%w: decode token response: %v", domain.ErrExternalService, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response missing access_token", domain.ErrExternalService)
	}

	return p.fetchProfile(ctx, token.AccessToken)
}

func (p *GoogleProvider) fetchProfile(ctx context.Context, accessToken string) (*ports.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build userinfo request: %v", domain.ErrExternalService, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch userinfo: %v", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo endpoint status %d", domain.ErrExternalService, resp.StatusCode)
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: decode userinfo: %v", domain.ErrExternalService, err)
	}

	return &ports.Profile{Name: info.Name, Email: info.Email, Image: info.Picture}, nil
}
