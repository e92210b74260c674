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

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

const addressCollection = "addresses"

type AddressRepository struct {
	coll *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{coll: db.Collection(addressCollection)}
}

type addressDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Street    string             `bson:"street"`
	City      string             `bson:"city"`
	State     string             `bson:"state,omitempty"`
	Zip       string             `bson:"zip"`
	Country   string             `bson:"country"`
	IsDefault bool               `bson:"is_default"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *addressDoc) toDomain() *domain.Address {
	return &domain.Address{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Street:    d.Street,
		City:      d.City,
		State:     d.State,
		Zip:       d.Zip,
		Country:   d.Country,
		IsDefault: d.IsDefault,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *AddressRepository) Create(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	doc := addressDoc{
		UserID:    a.UserID,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Country:   a.Country,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id string) (*domain.Address, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAddressNotFound
	}

	var doc addressDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AddressRepository) List(ctx context.Context, userID string) ([]domain.Address, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cur.Close(ctx)

	var addresses []domain.Address
	for cur.Next(ctx) {
		var doc addressDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
		addresses = append(addresses, *doc.toDomain())
	}
	return addresses, cur.Err()
}

func (r *AddressRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAddressNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}
