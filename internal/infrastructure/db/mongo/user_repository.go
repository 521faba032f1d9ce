package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Username  string             `bson:"username"`
	Image     string             `bson:"image,omitempty"`
	Bookmarks []string           `bson:"bookmarks"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return toDomainUser(&doc), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(&doc), nil
}

// Insert creates a new user. The unique indexes on email and username turn a
// concurrent duplicate insert into domain.ErrUserExists instead of a second
// silent success.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Email:     user.Email,
		Username:  user.Username,
		Image:     user.Image,
		Bookmarks: user.Bookmarks,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if doc.Bookmarks == nil {
		doc.Bookmarks = []string{}
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	created.Bookmarks = doc.Bookmarks
	return &created, nil
}

// ToggleBookmark flips membership of propertyID in the user's bookmark list.
// A $pull runs first; when it removed nothing, a $addToSet adds the id. Each
// step is a single atomic update and $addToSet can never produce a duplicate
// entry, so concurrent toggles keep membership unique.
func (r *UserRepository) ToggleBookmark(ctx context.Context, userID, propertyID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, domain.ErrUserNotFound
	}

	pull, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "bookmarks": propertyID},
		bson.M{"$pull": bson.M{"bookmarks": propertyID}},
	)
	if err != nil {
		return false, fmt.Errorf("remove bookmark: %w", err)
	}
	if pull.ModifiedCount > 0 {
		return false, nil
	}

	add, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"bookmarks": propertyID}},
	)
	if err != nil {
		return false, fmt.Errorf("add bookmark: %w", err)
	}
	if add.MatchedCount == 0 {
		return false, domain.ErrUserNotFound
	}
	return true, nil
}

// EnsureIndexes creates the unique indexes backing the email and username
// invariants.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDomainUser(doc *userDoc) *domain.User {
	bookmarks := doc.Bookmarks
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return &domain.User{
		ID:        doc.ID.Hex(),
		Email:     doc.Email,
		Username:  doc.Username,
		Image:     doc.Image,
		Bookmarks: bookmarks,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
