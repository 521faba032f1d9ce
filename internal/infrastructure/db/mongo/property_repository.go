package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
)

const collectionProperties = "properties"

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(collectionProperties)}
}

// propertyDoc is the persisted shape of a listing. The id is a Mongo ObjectID;
// the domain layer only ever sees its hex form.
type propertyDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Owner       string             `bson:"owner"`
	Type        string             `bson:"type"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Location    domain.Location    `bson:"location"`
	Beds        int                `bson:"beds"`
	Baths       float64            `bson:"baths"`
	SquareFeet  float64            `bson:"square_feet"`
	Amenities   []string           `bson:"amenities"`
	Images      []string           `bson:"images"`
	Rates       domain.Rates       `bson:"rates"`
	SellerInfo  domain.SellerInfo  `bson:"seller_info"`
	IsFeatured  bool               `bson:"is_featured"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// Insert persists a new listing and writes the assigned id back onto p.
func (r *PropertyRepository) Insert(ctx context.Context, p *domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, fromDomainProperty(p))
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	var doc propertyDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return toDomainProperty(&doc), nil
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*domain.Property, error) {
	return r.find(ctx, bson.M{})
}

func (r *PropertyRepository) FindFeatured(ctx context.Context) ([]*domain.Property, error) {
	return r.find(ctx, bson.M{"is_featured": true})
}

func (r *PropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return r.find(ctx, bson.M{"owner": ownerID})
}

// FindByIDs resolves the given ids with a single $in query. Malformed or
// dangling ids simply do not match and drop out of the result.
func (r *PropertyRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Property, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []*domain.Property{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

// Replace overwrites the listing matching both id and owner in one store
// operation, so a mutation can never half-apply.
func (r *PropertyRepository) Replace(ctx context.Context, id, ownerID string, p *domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid, "owner": ownerID}, fromDomainProperty(p))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// Delete removes the listing matching both id and owner. No soft-delete.
func (r *PropertyRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// EnsureIndexes creates the secondary indexes on the properties collection.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *PropertyRepository) find(ctx context.Context, filter bson.M) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	properties := []*domain.Property{}
	for cur.Next(ctx) {
		var doc propertyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		properties = append(properties, toDomainProperty(&doc))
	}
	return properties, cur.Err()
}

func fromDomainProperty(p *domain.Property) *propertyDoc {
	doc := &propertyDoc{
		Owner:       p.Owner,
		Type:        p.Type,
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		Beds:        p.Beds,
		Baths:       p.Baths,
		SquareFeet:  p.SquareFeet,
		Amenities:   p.Amenities,
		Images:      p.Images,
		Rates:       p.Rates,
		SellerInfo:  p.SellerInfo,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func toDomainProperty(doc *propertyDoc) *domain.Property {
	return &domain.Property{
		ID:          doc.ID.Hex(),
		Owner:       doc.Owner,
		Type:        doc.Type,
		Name:        doc.Name,
		Description: doc.Description,
		Location:    doc.Location,
		Beds:        doc.Beds,
		Baths:       doc.Baths,
		SquareFeet:  doc.SquareFeet,
		Amenities:   doc.Amenities,
		Images:      doc.Images,
		Rates:       doc.Rates,
		SellerInfo:  doc.SellerInfo,
		IsFeatured:  doc.IsFeatured,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
