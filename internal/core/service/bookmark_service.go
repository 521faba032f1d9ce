package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/RexKizzy22/rex-properties/internal/api/metrics"
	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

// BookmarkService owns the bookmark membership relation between users and
// listings. Toggle atomicity is delegated to the user repository.
type BookmarkService struct {
	users      ports.UserRepository
	properties ports.PropertyRepository
	logger     zerolog.Logger
}

func NewBookmarkService(users ports.UserRepository, properties ports.PropertyRepository, logger zerolog.Logger) *BookmarkService {
	return &BookmarkService{users: users, properties: properties, logger: logger}
}

// Toggle flips membership of propertyID in the user's bookmark list.
func (s *BookmarkService) Toggle(ctx context.Context, userID, propertyID string) (*ports.ToggleResult, error) {
	bookmarked, err := s.users.ToggleBookmark(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}

	result := &ports.ToggleResult{IsBookmarked: bookmarked}
	if bookmarked {
		result.Message = "Bookmark successfully added"
		metrics.BookmarkTogglesTotal.WithLabelValues("added").Inc()
	} else {
		result.Message = "Bookmark successfully removed"
		metrics.BookmarkTogglesTotal.WithLabelValues("removed").Inc()
	}

	s.logger.Debug().Str("user_id", userID).Str("property_id", propertyID).Bool("bookmarked", bookmarked).Msg("bookmark toggled")
	return result, nil
}

// IsBookmarked reports whether propertyID is in the user's bookmark list.
func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, propertyID string) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range user.Bookmarks {
		if id == propertyID {
			return true, nil
		}
	}
	return false, nil
}

// ListBookmarked resolves the user's bookmark ids against the listing store.
// Ids of deleted properties simply drop out of the result.
func (s *BookmarkService) ListBookmarked(ctx context.Context, userID string) ([]*domain.Property, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Bookmarks) == 0 {
		return []*domain.Property{}, nil
	}
	return s.properties.FindByIDs(ctx, user.Bookmarks)
}
