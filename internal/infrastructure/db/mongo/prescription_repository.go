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

const prescriptionCollection = "prescriptions"

type PrescriptionRepository struct {
	coll *mongo.Collection
}

func NewPrescriptionRepository(db *mongo.Database) *PrescriptionRepository {
	return &PrescriptionRepository{coll: db.Collection(prescriptionCollection)}
}

type prescriptionDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	DoctorName   string             `bson:"doctor_name"`
	Medication   string             `bson:"medication"`
	Dosage       string             `bson:"dosage,omitempty"`
	Instructions string             `bson:"instructions,omitempty"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *prescriptionDoc) toDomain() *domain.Prescription {
	return &domain.Prescription{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		DoctorName:   d.DoctorName,
		Medication:   d.Medication,
		Dosage:       d.Dosage,
		Instructions: d.Instructions,
		Status:       domain.PrescriptionStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *PrescriptionRepository) Create(ctx context.Context, p *domain.Prescription) (*domain.Prescription, error) {
	doc := prescriptionDoc{
		UserID:       p.UserID,
		DoctorName:   p.DoctorName,
		Medication:   p.Medication,
		Dosage:       p.Dosage,
		Instructions: p.Instructions,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert prescription: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PrescriptionRepository) FindByID(ctx context.Context, id string) (*domain.Prescription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPrescriptionNotFound
	}

	var doc prescriptionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("find prescription: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PrescriptionRepository) List(ctx context.Context, userID string) ([]domain.Prescription, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	defer cur.Close(ctx)

	var prescriptions []domain.Prescription
	for cur.Next(ctx) {
		var doc prescriptionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode prescription: %w", err)
		}
		prescriptions = append(prescriptions, *doc.toDomain())
	}
	return prescriptions, cur.Err()
}

func (r *PrescriptionRepository) UpdateStatus(ctx context.Context, id string, status domain.PrescriptionStatus) (*domain.Prescription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPrescriptionNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc prescriptionDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("update prescription status: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PrescriptionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPrescriptionNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete prescription: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPrescriptionNotFound
	}
	return nil
}
