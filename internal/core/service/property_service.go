package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RexKizzy22/rex-properties/internal/api/metrics"
	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

// PropertyService implements listing CRUD with ownership enforcement on
// every mutation.
type PropertyService struct {
	repo     ports.PropertyRepository
	uploader ports.ImageUploader
	logger   zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, uploader ports.ImageUploader, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, uploader: uploader, logger: logger}
}

// Create validates the fields, uploads any images to the asset host, and
// persists the listing with the acting identity as owner. Upload failures
// abort the operation before anything is written.
func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	if input.OwnerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateFields(input.Fields); err != nil {
		return nil, err
	}

	urls, err := s.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	property := &domain.Property{
		Owner:     input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
		Images:    urls,
	}
	applyFields(property, input.Fields)

	if err := s.repo.Insert(ctx, property); err != nil {
		s.logger.Error().Err(err).Str("owner", input.OwnerID).Msg("failed to create property")
		return nil, err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(property.Type).Inc()
	s.logger.Info().Str("property_id", property.ID).Str("owner", property.Owner).Msg("property created")

	return property, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) ListAll(ctx context.Context) ([]*domain.Property, error) {
	return s.repo.FindAll(ctx)
}

func (s *PropertyService) ListFeatured(ctx context.Context) ([]*domain.Property, error) {
	return s.repo.FindFeatured(ctx)
}

func (s *PropertyService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// Update replaces the mutable fields of a listing. The current record is
// fetched first and the ownership check runs before any write; the store
// write itself is additionally owner-filtered so the replace is atomic.
func (s *PropertyService) Update(ctx context.Context, id, actorID string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Owner != actorID {
		s.logger.Warn().Str("property_id", id).Str("actor", actorID).Str("owner", current.Owner).Msg("update denied: not owner")
		return nil, domain.ErrForbidden
	}
	if err := validateFields(input.Fields); err != nil {
		return nil, err
	}

	urls, err := s.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	updated := *current
	applyFields(&updated, input.Fields)
	if len(urls) > 0 {
		updated.Images = urls
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, id, actorID, &updated); err != nil {
		return nil, err
	}

	s.logger.Info().Str("property_id", id).Str("owner", actorID).Msg("property updated")
	return &updated, nil
}

// Delete permanently removes a listing after verifying ownership.
func (s *PropertyService) Delete(ctx context.Context, id, actorID string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Owner != actorID {
		s.logger.Warn().Str("property_id", id).Str("actor", actorID).Str("owner", current.Owner).Msg("delete denied: not owner")
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id, actorID); err != nil {
		return err
	}

	metrics.PropertiesDeletedTotal.Inc()
	s.logger.Info().Str("property_id", id).Str("owner", actorID).Msg("property deleted")
	return nil
}

func (s *PropertyService) uploadImages(ctx context.Context, images []ports.ImageUpload) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}
	urls, err := s.uploader.Upload(ctx, images)
	if err != nil {
		metrics.ImageUploadFailuresTotal.Inc()
		s.logger.Error().Err(err).Int("count", len(images)).Msg("image upload failed")
		return nil, fmt.Errorf("upload images: %w", err)
	}
	return urls, nil
}

// validateFields enforces the required-field contract for create and update.
func validateFields(f ports.PropertyFields) error {
	switch {
	case f.Type == "":
		return fmt.Errorf("%w: type is required", domain.ErrValidation)
	case f.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case f.Location.City == "":
		return fmt.Errorf("%w: location.city is required", domain.ErrValidation)
	case f.Location.State == "":
		return fmt.Errorf("%w: location.state is required", domain.ErrValidation)
	case f.Beds < 0:
		return fmt.Errorf("%w: beds must not be negative", domain.ErrValidation)
	case f.Baths < 0:
		return fmt.Errorf("%w: baths must not be negative", domain.ErrValidation)
	case f.SquareFeet < 0:
		return fmt.Errorf("%w: square_feet must not be negative", domain.ErrValidation)
	}
	for _, rate := range []*float64{f.Rates.Nightly, f.Rates.Weekly, f.Rates.Monthly} {
		if rate != nil && *rate < 0 {
			return fmt.Errorf("%w: rates must not be negative", domain.ErrValidation)
		}
	}
	return nil
}

// applyFields copies the mutable fields onto the record. Owner, id, images,
// and timestamps are deliberately untouched.
func applyFields(p *domain.Property, f ports.PropertyFields) {
	p.Type = f.Type
	p.Name = f.Name
	p.Description = f.Description
	p.Location = domain.Location{
		Street:  f.Location.Street,
		City:    f.Location.City,
		State:   f.Location.State,
		Zipcode: f.Location.Zipcode,
	}
	p.Beds = f.Beds
	p.Baths = f.Baths
	p.SquareFeet = f.SquareFeet
	p.Amenities = f.Amenities
	p.Rates = domain.Rates{
		Nightly: f.Rates.Nightly,
		Weekly:  f.Rates.Weekly,
		Monthly: f.Rates.Monthly,
	}
	p.SellerInfo = domain.SellerInfo{
		Name:  f.SellerInfo.Name,
		Email: f.SellerInfo.Email,
		Phone: f.SellerInfo.Phone,
	}
	p.IsFeatured = f.IsFeatured
}
