package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

// StateStore is the interface the handler uses for single-use OAuth state
// nonces (CSRF guard on the callback).
type StateStore interface {
	Issue(ctx context.Context) (string, error)
	Consume(ctx context.Context, state string) (bool, error)
}

// AuthHandler drives the OAuth sign-in flow: redirect to the provider, then
// exchange the callback code for a profile and issue a session token.
type AuthHandler struct {
	provider ports.OAuthProvider
	identity ports.IdentityService
	states   StateStore
}

func NewAuthHandler(provider ports.OAuthProvider, identity ports.IdentityService, states StateStore) *AuthHandler {
	return &AuthHandler{provider: provider, identity: identity, states: states}
}

type signInResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login handles GET /auth/google — issues a state nonce and redirects to the
// provider's consent page.
//
// @Summary      Start Google sign-in
// @Tags         auth
// @Success      302
// @Failure      500  {object}  errorResponse
// @Router       /auth/google [get]
func (h *AuthHandler) Login(c echo.Context) error {
	state, err := h.states.Issue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// Callback handles GET /auth/google/callback. The state nonce must match one
// issued by Login; the code is exchanged for a profile, the local user is
// resolved (created on first sign-in), and a session token is returned both
// as a cookie and in the JSON body.
//
// @Summary      Complete Google sign-in
// @Tags         auth
// @Produce      json
// @Param        state  query  string  true  "State nonce"
// @Param        code   query  string  true  "Authorization code"
// @Success      200  {object}  signInResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /auth/google/callback [get]
func (h *AuthHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()

	state := c.QueryParam("state")
	if state == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing oauth state")
	}
	ok, err := h.states.Consume(ctx, state)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid oauth state")
	}

	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization code")
	}

	profile, err := h.provider.Exchange(ctx, code)
	if err != nil {
		return err
	}

	user, err := h.identity.FindOrCreateByEmail(ctx, *profile)
	if err != nil {
		return err
	}

	token, err := h.identity.IssueSessionToken(user)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     "session_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, signInResponse{Token: token, User: user})
}
