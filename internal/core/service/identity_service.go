package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/RexKizzy22/rex-properties/internal/api/metrics"
	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

const usernameMaxLen = 20

// IdentityService maps OAuth provider profiles to local users and issues
// signed session tokens.
type IdentityService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewIdentityService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *IdentityService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &IdentityService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// FindOrCreateByEmail returns the user for profile.Email, creating one on
// first sign-in. When a concurrent sign-in wins the insert race, the unique
// index rejects ours and the winner's record is fetched instead, so exactly
// one user exists per email.
func (s *IdentityService) FindOrCreateByEmail(ctx context.Context, profile ports.Profile) (*domain.User, error) {
	if profile.Email == "" {
		return nil, fmt.Errorf("%w: provider profile has no email", domain.ErrValidation)
	}

	user, err := s.repo.FindByEmail(ctx, profile.Email)
	if err == nil {
		metrics.SignInsTotal.WithLabelValues("existing").Inc()
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user = &domain.User{
		Email:     profile.Email,
		Username:  truncate(profile.Name, usernameMaxLen),
		Image:     profile.Image,
		Bookmarks: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, user)
	if errors.Is(err, domain.ErrUserExists) {
		// Lost the race to a concurrent first sign-in for the same email.
		return s.repo.FindByEmail(ctx, profile.Email)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("email", profile.Email).Msg("failed to create user")
		return nil, err
	}

	metrics.SignInsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created on first sign-in")
	return created, nil
}

func (s *IdentityService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// IssueSessionToken signs a session JWT carrying the local user id.
func (s *IdentityService) IssueSessionToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
