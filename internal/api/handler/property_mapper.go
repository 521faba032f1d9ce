package handler

import (
	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

// --- Request → Service input ---

func toPropertyFields(req *propertyRequest) ports.PropertyFields {
	return ports.PropertyFields{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		Location: ports.LocationInput{
			Street:  req.Location.Street,
			City:    req.Location.City,
			State:   req.Location.State,
			Zipcode: req.Location.Zipcode,
		},
		Beds:       req.Beds,
		Baths:      req.Baths,
		SquareFeet: req.SquareFeet,
		Amenities:  req.Amenities,
		Rates: ports.RatesInput{
			Nightly: req.Rates.Nightly,
			Weekly:  req.Rates.Weekly,
			Monthly: req.Rates.Monthly,
		},
		SellerInfo: ports.SellerInfoInput{
			Name:  req.SellerInfo.Name,
			Email: req.SellerInfo.Email,
			Phone: req.SellerInfo.Phone,
		},
		IsFeatured: req.IsFeatured,
	}
}

// --- Domain → HTTP response ---

func toPropertyResponse(p *domain.Property) propertyResponse {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return propertyResponse{
		ID:          p.ID,
		Owner:       p.Owner,
		Type:        p.Type,
		Name:        p.Name,
		Description: p.Description,
		Location: locationResponse{
			Street:  p.Location.Street,
			City:    p.Location.City,
			State:   p.Location.State,
			Zipcode: p.Location.Zipcode,
		},
		Beds:       p.Beds,
		Baths:      p.Baths,
		SquareFeet: p.SquareFeet,
		Amenities:  amenities,
		Images:     images,
		Rates: ratesResponse{
			Nightly: p.Rates.Nightly,
			Weekly:  p.Rates.Weekly,
			Monthly: p.Rates.Monthly,
		},
		SellerInfo: sellerInfoResponse{
			Name:  p.SellerInfo.Name,
			Email: p.SellerInfo.Email,
			Phone: p.SellerInfo.Phone,
		},
		IsFeatured: p.IsFeatured,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toPropertyListResponse(properties []*domain.Property) []propertyResponse {
	out := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}
	return out
}
