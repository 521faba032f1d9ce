package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrForbidden = errors.New("access forbidden")
var ErrUnauthenticated = errors.New("authentication required")
var ErrValidation = errors.New("validation failed")
var ErrExternalService = errors.New("external service failure")

// Location is the physical address of a listing.
type Location struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Zipcode string `json:"zipcode" bson:"zipcode"`
}

// Rates holds the advertised rental rates. Each period is optional; a listing
// may offer any combination of nightly, weekly, and monthly pricing.
type Rates struct {
	Nightly *float64 `json:"nightly,omitempty" bson:"nightly,omitempty"`
	Weekly  *float64 `json:"weekly,omitempty" bson:"weekly,omitempty"`
	Monthly *float64 `json:"monthly,omitempty" bson:"monthly,omitempty"`
}

// SellerInfo is the contact block shown to prospective renters.
type SellerInfo struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// Property is a rental listing. Owner is the id of the user that created the
// listing; it is assigned once at creation and never changed by updates.
type Property struct {
	ID          string     `json:"_id" bson:"_id,omitempty"`
	Owner       string     `json:"owner" bson:"owner"`
	Type        string     `json:"type" bson:"type"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Location    Location   `json:"location" bson:"location"`
	Beds        int        `json:"beds" bson:"beds"`
	Baths       float64    `json:"baths" bson:"baths"`
	SquareFeet  float64    `json:"square_feet" bson:"square_feet"`
	Amenities   []string   `json:"amenities" bson:"amenities"`
	Images      []string   `json:"images" bson:"images"`
	Rates       Rates      `json:"rates" bson:"rates"`
	SellerInfo  SellerInfo `json:"seller_info" bson:"seller_info"`
	IsFeatured  bool       `json:"is_featured" bson:"is_featured"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}
