package handler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

// decodePropertyForm parses a multipart create/update body into a
// propertyRequest plus raw image uploads. Nested objects use dotted keys
// (location.city, rates.nightly, seller_info.email); amenities and images
// are repeated keys. Malformed numbers fail with a validation error.
func decodePropertyForm(c echo.Context) (*propertyRequest, []ports.ImageUpload, error) {
	req := &propertyRequest{
		Type:        c.FormValue("type"),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Location: locationRequest{
			Street:  c.FormValue("location.street"),
			City:    c.FormValue("location.city"),
			State:   c.FormValue("location.state"),
			Zipcode: c.FormValue("location.zipcode"),
		},
		SellerInfo: sellerInfoRequest{
			Name:  c.FormValue("seller_info.name"),
			Email: c.FormValue("seller_info.email"),
			Phone: c.FormValue("seller_info.phone"),
		},
	}

	var err error
	if req.Beds, err = formInt(c, "beds"); err != nil {
		return nil, nil, err
	}
	if req.Baths, err = formFloat(c, "baths"); err != nil {
		return nil, nil, err
	}
	if req.SquareFeet, err = formFloat(c, "square_feet"); err != nil {
		return nil, nil, err
	}
	if req.Rates.Nightly, err = formOptFloat(c, "rates.nightly"); err != nil {
		return nil, nil, err
	}
	if req.Rates.Weekly, err = formOptFloat(c, "rates.weekly"); err != nil {
		return nil, nil, err
	}
	if req.Rates.Monthly, err = formOptFloat(c, "rates.monthly"); err != nil {
		return nil, nil, err
	}
	if req.IsFeatured, err = formBool(c, "is_featured"); err != nil {
		return nil, nil, err
	}

	if params, err := c.FormParams(); err == nil {
		req.Amenities = params["amenities"]
	}

	images, err := formImages(c)
	if err != nil {
		return nil, nil, err
	}

	return req, images, nil
}

// formImages reads the repeated "images" file parts. A non-multipart body
// simply carries no images.
func formImages(c echo.Context) ([]ports.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var images []ports.ImageUpload
	for _, fh := range form.File["images"] {
		if fh.Filename == "" {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read image %s", domain.ErrValidation, fh.Filename)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read image %s", domain.ErrValidation, fh.Filename)
		}
		images = append(images, ports.ImageUpload{Filename: fh.Filename, Data: data})
	}
	return images, nil
}

func formInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrValidation, name)
	}
	return n, nil
}

func formFloat(c echo.Context, name string) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrValidation, name)
	}
	return f, nil
}

func formOptFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrValidation, name)
	}
	return &f, nil
}

func formBool(c echo.Context, name string) (bool, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", domain.ErrValidation, name)
	}
	return b, nil
}
