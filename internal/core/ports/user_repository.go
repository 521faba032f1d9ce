package ports

import (
	"context"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

// UserRepository defines persistence operations for application identities.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Insert creates a new user. A concurrent insert for the same email or
	// username surfaces as domain.ErrUserExists via the store's unique index.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// ToggleBookmark atomically flips membership of propertyID in the user's
	// bookmark list and reports the resulting state (true = now bookmarked).
	ToggleBookmark(ctx context.Context, userID, propertyID string) (bool, error)
}
