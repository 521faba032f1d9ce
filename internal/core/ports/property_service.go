package ports

import (
	"context"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

// LocationInput holds a listing address.
type LocationInput struct {
	Street  string
	City    string
	State   string
	Zipcode string
}

// RatesInput holds the optional rental rates. Nil means the period is not offered.
type RatesInput struct {
	Nightly *float64
	Weekly  *float64
	Monthly *float64
}

// SellerInfoInput holds seller contact details.
type SellerInfoInput struct {
	Name  string
	Email string
	Phone string
}

// PropertyFields carries the mutable fields of a listing, shared by create
// and update. Owner and timestamps are never part of it.
type PropertyFields struct {
	Type        string
	Name        string
	Description string
	Location    LocationInput
	Beds        int
	Baths       float64
	SquareFeet  float64
	Amenities   []string
	Rates       RatesInput
	SellerInfo  SellerInfoInput
	IsFeatured  bool
}

// ImageUpload is a raw image file received with a create or update request.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// CreatePropertyInput carries all data needed to create a listing.
// OwnerID comes from the authenticated identity, never from the form.
type CreatePropertyInput struct {
	OwnerID string
	Fields  PropertyFields
	Images  []ImageUpload
}

// UpdatePropertyInput carries the replacement fields for a listing. When
// Images is empty the existing image set is kept.
type UpdatePropertyInput struct {
	Fields PropertyFields
	Images []ImageUpload
}

// PropertyService defines the use-case operations for listings. Update and
// Delete enforce ownership: actorID must equal the stored owner.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	ListAll(ctx context.Context) ([]*domain.Property, error)
	ListFeatured(ctx context.Context) ([]*domain.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error)
	Update(ctx context.Context, id, actorID string, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id, actorID string) error
}
