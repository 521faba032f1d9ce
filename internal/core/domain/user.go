package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User is an application identity bound to an external OAuth profile.
// Email and Username are unique across all users. Bookmarks holds property
// ids; membership is unique, enforced at the store level.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Username  string    `json:"username" bson:"username"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	Bookmarks []string  `json:"bookmarks" bson:"bookmarks"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
