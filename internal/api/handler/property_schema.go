package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---
//
// Create/update bodies arrive as multipart form data with dotted keys for
// nested objects; property_form.go decodes them into these structs before
// validation. Numeric presence and coercion are enforced by the decoder, the
// remaining constraints by validate tags.

type locationRequest struct {
	Street  string
	City    string `validate:"required"`
	State   string `validate:"required"`
	Zipcode string
}

type ratesRequest struct {
	Nightly *float64 `validate:"omitempty,gte=0"`
	Weekly  *float64 `validate:"omitempty,gte=0"`
	Monthly *float64 `validate:"omitempty,gte=0"`
}

type sellerInfoRequest struct {
	Name  string
	Email string `validate:"omitempty,email"`
	Phone string
}

type propertyRequest struct {
	Type        string `validate:"required"`
	Name        string `validate:"required"`
	Description string
	Location    locationRequest `validate:"required"`
	Beds        int             `validate:"gte=0"`
	Baths       float64         `validate:"gte=0"`
	SquareFeet  float64         `validate:"gte=0"`
	Amenities   []string
	Rates       ratesRequest
	SellerInfo  sellerInfoRequest
	IsFeatured  bool
}

// --- Response types ---
//
// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type locationResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

type ratesResponse struct {
	Nightly *float64 `json:"nightly,omitempty"`
	Weekly  *float64 `json:"weekly,omitempty"`
	Monthly *float64 `json:"monthly,omitempty"`
}

type sellerInfoResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type propertyResponse struct {
	ID          string             `json:"_id"`
	Owner       string             `json:"owner"`
	Type        string             `json:"type"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Location    locationResponse   `json:"location"`
	Beds        int                `json:"beds"`
	Baths       float64            `json:"baths"`
	SquareFeet  float64            `json:"square_feet"`
	Amenities   []string           `json:"amenities"`
	Images      []string           `json:"images"`
	Rates       ratesResponse      `json:"rates"`
	SellerInfo  sellerInfoResponse `json:"seller_info"`
	IsFeatured  bool               `json:"is_featured"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}
