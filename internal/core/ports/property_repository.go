package ports

import (
	"context"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

// PropertyRepository defines persistence operations for rental listings.
type PropertyRepository interface {
	// Insert persists a new property and assigns its id.
	Insert(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	FindAll(ctx context.Context) ([]*domain.Property, error)
	FindFeatured(ctx context.Context) ([]*domain.Property, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error)
	// FindByIDs resolves a list of property ids. Ids that no longer exist are
	// silently absent from the result, never an error.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Property, error)
	// Replace overwrites the document matching both id and ownerID in a single
	// store operation. Returns ErrPropertyNotFound when nothing matched.
	Replace(ctx context.Context, id, ownerID string, p *domain.Property) error
	// Delete removes the document matching both id and ownerID.
	Delete(ctx context.Context, id, ownerID string) error
}
