package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

const testSecret = "test-secret"

func newIdentityService(repo ports.UserRepository) *IdentityService {
	return NewIdentityService(repo, testSecret, time.Hour, discardLogger)
}

func TestIdentityService_FindOrCreate_CreatesOnFirstSignIn(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo)

	user, err := svc.FindOrCreateByEmail(context.Background(), ports.Profile{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Image: "https://img.example.com/jane.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == "" {
		t.Error("expected an assigned id")
	}
	if user.Email != "jane@example.com" {
		t.Errorf("email: got %q", user.Email)
	}
	if user.Username != "Jane Doe" {
		t.Errorf("username: got %q", user.Username)
	}
	if user.Bookmarks == nil {
		t.Error("bookmarks must start as an empty list, not nil")
	}
	if _, exists := repo.byEmail["jane@example.com"]; !exists {
		t.Error("user not persisted")
	}
}

func TestIdentityService_FindOrCreate_TruncatesLongUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo)

	longName := strings.Repeat("a", 35)
	user, err := svc.FindOrCreateByEmail(context.Background(), ports.Profile{
		Name:  longName,
		Email: "long@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len([]rune(user.Username)) != usernameMaxLen {
		t.Errorf("username must be truncated to %d characters, got %d", usernameMaxLen, len([]rune(user.Username)))
	}
	if user.Username != longName[:usernameMaxLen] {
		t.Errorf("unexpected truncation: %q", user.Username)
	}
}

func TestIdentityService_FindOrCreate_ReturnsExistingUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo)
	seeded := seedUser(repo, "user_1", "jane@example.com")

	user, err := svc.FindOrCreateByEmail(context.Background(), ports.Profile{
		Name:  "A Different Display Name",
		Email: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != seeded.ID {
		t.Errorf("expected the existing user %q, got %q", seeded.ID, user.ID)
	}
	if user.Username != seeded.Username {
		t.Error("existing username must not be overwritten by the provider profile")
	}
}

func TestIdentityService_FindOrCreate_MissingEmail(t *testing.T) {
	svc := newIdentityService(newStubUserRepo())

	_, err := svc.FindOrCreateByEmail(context.Background(), ports.Profile{Name: "No Email"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// raceUserRepo simulates losing the insert race: the lookup misses, then a
// concurrent sign-in lands the row before our insert reaches the store.
type raceUserRepo struct {
	*stubUserRepo
}

func (r *raceUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	winner := *user
	winner.ID = "user_winner"
	winner.Username = "winner"
	r.byID[winner.ID] = &winner
	r.byEmail[winner.Email] = &winner
	return nil, domain.ErrUserExists
}

func TestIdentityService_FindOrCreate_InsertRaceReturnsWinner(t *testing.T) {
	repo := &raceUserRepo{stubUserRepo: newStubUserRepo()}
	svc := newIdentityService(repo)

	user, err := svc.FindOrCreateByEmail(context.Background(), ports.Profile{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})
	if err != nil {
		t.Fatalf("losing the insert race must not surface an error: %v", err)
	}
	if user.ID != "user_winner" {
		t.Errorf("expected the winner's record, got %q", user.ID)
	}
}

func TestIdentityService_IssueSessionToken(t *testing.T) {
	svc := newIdentityService(newStubUserRepo())
	user := &domain.User{ID: "user_1", Email: "jane@example.com", Username: "jane"}

	token, err := svc.IssueSessionToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["user_id"] != "user_1" {
		t.Errorf("user_id claim: got %v", claims["user_id"])
	}
	if claims["email"] != "jane@example.com" {
		t.Errorf("email claim: got %v", claims["email"])
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) <= time.Now().Unix() {
		t.Error("exp claim must be in the future")
	}
}
