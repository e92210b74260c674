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

const paymentCollection = "payment_methods"

type PaymentMethodRepository struct {
	coll *mongo.Collection
}

func NewPaymentMethodRepository(db *mongo.Database) *PaymentMethodRepository {
	return &PaymentMethodRepository{coll: db.Collection(paymentCollection)}
}

type paymentMethodDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Type      string             `bson:"type"`
	Details   string             `bson:"details"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *paymentMethodDoc) toDomain() *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Type:      d.Type,
		Details:   d.Details,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *PaymentMethodRepository) Create(ctx context.Context, pm *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	doc := paymentMethodDoc{
		UserID:    pm.UserID,
		Type:      pm.Type,
		Details:   pm.Details,
		CreatedAt: pm.CreatedAt,
		UpdatedAt: pm.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment method: %w", err)
	}

	created := *pm
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PaymentMethodRepository) FindByID(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPaymentMethodNotFound
	}

	var doc paymentMethodDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentMethodRepository) List(ctx context.Context, userID string) ([]domain.PaymentMethod, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer cur.Close(ctx)

	var methods []domain.PaymentMethod
	for cur.Next(ctx) {
		var doc paymentMethodDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode payment method: %w", err)
		}
		methods = append(methods, *doc.toDomain())
	}
	return methods, cur.Err()
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPaymentMethodNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}
