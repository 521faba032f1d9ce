package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

var testConfig = Config{
	ClientID:     "client-id",
	ClientSecret: "client-secret",
	RedirectURL:  "http://localhost:8080/auth/google/callback",
}

func TestGoogleProvider_AuthCodeURL(t *testing.T) {
	p := NewGoogleProvider(testConfig)

	raw := p.AuthCodeURL("nonce-123")
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid url: %v", err)
	}

	q := parsed.Query()
	if q.Get("client_id") != "client-id" {
		t.Errorf("client_id: %q", q.Get("client_id"))
	}
	if q.Get("state") != "nonce-123" {
		t.Errorf("state: %q", q.Get("state"))
	}
	if q.Get("response_type") != "code" {
		t.Errorf("response_type: %q", q.Get("response_type"))
	}
	if q.Get("scope") != "openid email profile" {
		t.Errorf("scope: %q", q.Get("scope"))
	}
	if q.Get("redirect_uri") != testConfig.RedirectURL {
		t.Errorf("redirect_uri: %q", q.Get("redirect_uri"))
	}
}

func newTestProvider(t *testing.T, tokenHandler, userinfoHandler http.HandlerFunc) *GoogleProvider {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", tokenHandler)
	mux.HandleFunc("/userinfo", userinfoHandler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewGoogleProviderWithEndpoints(testConfig, server.URL+"/auth", server.URL+"/token", server.URL+"/userinfo")
}

func TestGoogleProvider_Exchange_Success(t *testing.T) {
	p := newTestProvider(t,
		func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Fatal(err)
			}
			if r.PostFormValue("code") != "auth-code" {
				t.Errorf("code: %q", r.PostFormValue("code"))
			}
			if r.PostFormValue("grant_type") != "authorization_code" {
				t.Errorf("grant_type: %q", r.PostFormValue("grant_type"))
			}
			if r.PostFormValue("client_secret") != "client-secret" {
				t.Errorf("client_secret: %q", r.PostFormValue("client_secret"))
			}
			fmt.Fprint(w, `{"access_token":"at-123"}`)
		},
		func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer at-123" {
				t.Errorf("userinfo auth header: %q", got)
			}
			fmt.Fprint(w, `{"name":"Jane Doe","email":"jane@example.com","picture":"https://img.example.com/jane.png"}`)
		},
	)

	profile, err := p.Exchange(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "Jane Doe" || profile.Email != "jane@example.com" {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if !strings.HasSuffix(profile.Image, "jane.png") {
		t.Errorf("picture must map to Image: %q", profile.Image)
	}
}

func TestGoogleProvider_Exchange_RejectedCode(t *testing.T) {
	p := newTestProvider(t,
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("userinfo must not be called")
		},
	)

	_, err := p.Exchange(context.Background(), "bad-code")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for rejected code, got %v", err)
	}
}

func TestGoogleProvider_Exchange_ProviderOutage(t *testing.T) {
	p := newTestProvider(t,
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("userinfo must not be called")
		},
	)

	_, err := p.Exchange(context.Background(), "auth-code")
	if !errors.Is(err, domain.ErrExternalService) {
		t.Fatalf("expected ErrExternalService for provider outage, got %v", err)
	}
}

func TestGoogleProvider_Exchange_MissingAccessToken(t *testing.T) {
	p := newTestProvider(t,
		func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("userinfo must not be called")
		},
	)

	_, err := p.Exchange(context.Background(), "auth-code")
	if !errors.Is(err, domain.ErrExternalService) {
		t.Fatalf("expected ErrExternalService, got %v", err)
	}
}

func TestGoogleProvider_Exchange_UserinfoFailure(t *testing.T) {
	p := newTestProvider(t,
		func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"access_token":"at-123"}`)
		},
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		},
	)

	_, err := p.Exchange(context.Background(), "auth-code")
	if !errors.Is(err, domain.ErrExternalService) {
		t.Fatalf("expected ErrExternalService for userinfo failure, got %v", err)
	}
}
