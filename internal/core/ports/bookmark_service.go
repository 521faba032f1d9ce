package ports

import (
	"context"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

// ToggleResult reports the outcome of a bookmark toggle.
type ToggleResult struct {
	Message      string
	IsBookmarked bool
}

// BookmarkService owns bookmark membership state and its toggle semantics.
type BookmarkService interface {
	Toggle(ctx context.Context, userID, propertyID string) (*ToggleResult, error)
	IsBookmarked(ctx context.Context, userID, propertyID string) (bool, error)
	// ListBookmarked resolves the user's bookmarks against the listing store.
	// Dangling ids (deleted properties) are silently skipped.
	ListBookmarked(ctx context.Context, userID string) ([]*domain.Property, error)
}
