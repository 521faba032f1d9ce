package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	nextID    int
	insertErr error // if set, Insert returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// Insert mirrors the unique-email index: a duplicate surfaces as ErrUserExists.
func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byID[clone.ID] = &clone
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) ToggleBookmark(_ context.Context, userID, propertyID string) (bool, error) {
	u, ok := r.byID[userID]
	if !ok {
		return false, domain.ErrUserNotFound
	}
	for i, id := range u.Bookmarks {
		if id == propertyID {
			u.Bookmarks = append(u.Bookmarks[:i], u.Bookmarks[i+1:]...)
			return false, nil
		}
	}
	u.Bookmarks = append(u.Bookmarks, propertyID)
	return true, nil
}

func seedUser(repo *stubUserRepo, id, email string, bookmarks ...string) *domain.User {
	now := time.Now().UTC()
	u := &domain.User{
		ID:        id,
		Email:     email,
		Username:  "tester",
		Bookmarks: bookmarks,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.Bookmarks == nil {
		u.Bookmarks = []string{}
	}
	repo.byID[id] = u
	repo.byEmail[email] = u
	return u
}

// ---------------------------------------------------------------------------
// Toggle tests
// ---------------------------------------------------------------------------

func TestBookmarkService_Toggle_AddsWhenAbsent(t *testing.T) {
	users := newStubUserRepo()
	props := newStubPropertyRepo()
	svc := NewBookmarkService(users, props, discardLogger)
	seedUser(users, "user_1", "a@example.com")

	result, err := svc.Toggle(context.Background(), "user_1", "prop_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsBookmarked {
		t.Error("expected isBookmarked=true after adding")
	}
	if result.Message != "Bookmark successfully added" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestBookmarkService_Toggle_RemovesWhenPresent(t *testing.T) {
	users := newStubUserRepo()
	props := newStubPropertyRepo()
	svc := NewBookmarkService(users, props, discardLogger)
	seedUser(users, "user_1", "a@example.com", "prop_1")

	result, err := svc.Toggle(context.Background(), "user_1", "prop_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsBookmarked {
		t.Error("expected isBookmarked=false after removing")
	}
	if result.Message != "Bookmark successfully removed" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestBookmarkService_Toggle_DoubleToggleRestoresState(t *testing.T) {
	users := newStubUserRepo()
	props := newStubPropertyRepo()
	svc := NewBookmarkService(users, props, discardLogger)
	seedUser(users, "user_1", "a@example.com")

	first, _ := svc.Toggle(context.Background(), "user_1", "prop_1")
	second, _ := svc.Toggle(context.Background(), "user_1", "prop_1")

	if !first.IsBookmarked || second.IsBookmarked {
		t.Errorf("toggle pair must return add then remove: %v %v", first.IsBookmarked, second.IsBookmarked)
	}
	if len(users.byID["user_1"].Bookmarks) != 0 {
		t.Error("two toggles must restore the original state")
	}
}

func TestBookmarkService_Toggle_UserNotFound(t *testing.T) {
	svc := NewBookmarkService(newStubUserRepo(), newStubPropertyRepo(), discardLogger)

	_, err := svc.Toggle(context.Background(), "ghost", "prop_1")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// IsBookmarked tests
// ---------------------------------------------------------------------------

func TestBookmarkService_IsBookmarked(t *testing.T) {
	users := newStubUserRepo()
	svc := NewBookmarkService(users, newStubPropertyRepo(), discardLogger)
	seedUser(users, "user_1", "a@example.com", "prop_1", "prop_2")

	got, err := svc.IsBookmarked(context.Background(), "user_1", "prop_2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected prop_2 to be bookmarked")
	}

	got, err = svc.IsBookmarked(context.Background(), "user_1", "prop_9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("expected prop_9 to not be bookmarked")
	}
}

// ---------------------------------------------------------------------------
// ListBookmarked tests
// ---------------------------------------------------------------------------

func TestBookmarkService_ListBookmarked_ResolvesProperties(t *testing.T) {
	users := newStubUserRepo()
	props := newStubPropertyRepo()
	svc := NewBookmarkService(users, props, discardLogger)

	seedProperty(props, "prop_1", "owner_1")
	seedProperty(props, "prop_2", "owner_2")
	seedUser(users, "user_1", "a@example.com", "prop_1", "prop_2")

	got, err := svc.ListBookmarked(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(got))
	}
}

func TestBookmarkService_ListBookmarked_SkipsDanglingIDs(t *testing.T) {
	users := newStubUserRepo()
	props := newStubPropertyRepo()
	svc := NewBookmarkService(users, props, discardLogger)

	seedProperty(props, "prop_1", "owner_1")
	// prop_deleted no longer exists in the listing store.
	seedUser(users, "user_1", "a@example.com", "prop_1", "prop_deleted")

	got, err := svc.ListBookmarked(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("dangling ids must not be an error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "prop_1" {
		t.Errorf("expected only the surviving property, got %+v", got)
	}
}

func TestBookmarkService_ListBookmarked_EmptyList(t *testing.T) {
	users := newStubUserRepo()
	svc := NewBookmarkService(users, newStubPropertyRepo(), discardLogger)
	seedUser(users, "user_1", "a@example.com")

	got, err := svc.ListBookmarked(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
