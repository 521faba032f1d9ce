package ports

import (
	"context"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

// Profile is the subset of an OAuth provider profile the application uses.
type Profile struct {
	Name  string
	Email string
	Image string
}

// IdentityService resolves provider profiles to local users and issues
// session tokens for them.
type IdentityService interface {
	// FindOrCreateByEmail looks up the user for profile.Email, creating one on
	// first sign-in. Safe under concurrent calls for the same email.
	FindOrCreateByEmail(ctx context.Context, profile Profile) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// IssueSessionToken returns a signed token carrying the local user id,
	// used as the request credential on subsequent calls.
	IssueSessionToken(user *domain.User) (string, error)
}

// OAuthProvider abstracts the external identity provider.
type OAuthProvider interface {
	// AuthCodeURL builds the provider consent URL carrying the given state nonce.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the signed-in user's profile.
	Exchange(ctx context.Context, code string) (*Profile, error)
}
