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

const inventoryCollection = "inventory"

type InventoryRepository struct {
	coll *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{coll: db.Collection(inventoryCollection)}
}

type inventoryDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Dosage     string             `bson:"dosage"`
	Quantity   int                `bson:"quantity"`
	Supplier   string             `bson:"supplier"`
	ExpiryDate time.Time          `bson:"expiry_date"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d *inventoryDoc) toDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Dosage:     d.Dosage,
		Quantity:   d.Quantity,
		Supplier:   d.Supplier,
		ExpiryDate: d.ExpiryDate,
		Status:     domain.StockStatus(d.Status),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func fromDomainInventory(item *domain.InventoryItem) inventoryDoc {
	return inventoryDoc{
		Name:       item.Name,
		Dosage:     item.Dosage,
		Quantity:   item.Quantity,
		Supplier:   item.Supplier,
		ExpiryDate: item.ExpiryDate,
		Status:     string(item.Status),
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	res, err := r.coll.InsertOne(ctx, fromDomainInventory(item))
	if err != nil {
		return nil, fmt.Errorf("insert inventory item: %w", err)
	}

	created := *item
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInventoryItemNotFound
	}

	var doc inventoryDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("find inventory item: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.InventoryItem
	for cur.Next(ctx) {
		var doc inventoryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode inventory item: %w", err)
		}
		items = append(items, *doc.toDomain())
	}
	return items, cur.Err()
}

func (r *InventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, domain.ErrInventoryItemNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": fromDomainInventory(item)})
	if err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrInventoryItemNotFound
	}
	return item, nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInventoryItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInventoryItemNotFound
	}
	return nil
}
