package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// DashboardRepository aggregates admin dashboard counters across collections.
type DashboardRepository struct {
	db *mongo.Database
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) count(ctx context.Context, coll string, filter bson.M) (int64, error) {
	n, err := r.db.Collection(coll).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", coll, err)
	}
	return n, nil
}

func (r *DashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, userCollection, bson.M{})
}

func (r *DashboardRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, orderCollection, bson.M{})
}

func (r *DashboardRepository) CountPendingOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, orderCollection, bson.M{"status": string(domain.OrderPending)})
}

func (r *DashboardRepository) CountPrescriptions(ctx context.Context) (int64, error) {
	return r.count(ctx, prescriptionCollection, bson.M{})
}

func (r *DashboardRepository) CountCompletedPrescriptions(ctx context.Context) (int64, error) {
	return r.count(ctx, prescriptionCollection, bson.M{"status": string(domain.PrescriptionCompleted)})
}

func (r *DashboardRepository) CountAddresses(ctx context.Context) (int64, error) {
	return r.count(ctx, addressCollection, bson.M{})
}

// SalesSince sums order totals created at or after from.
func (r *DashboardRepository) SalesSince(ctx context.Context, from time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": from}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}}},
	}

	cur, err := r.db.Collection(orderCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sales since: %w", err)
	}
	defer cur.Close(ctx)

	var row struct {
		Total float64 `bson:"total"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&row); err != nil {
			return 0, fmt.Errorf("decode sales: %w", err)
		}
	}
	return row.Total, cur.Err()
}

// TopMedications ranks prescriptions by medication name.
func (r *DashboardRepository) TopMedications(ctx context.Context, limit int) ([]ports.MedicationCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$medication", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.db.Collection(prescriptionCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("top medications: %w", err)
	}
	defer cur.Close(ctx)

	var out []ports.MedicationCount
	for cur.Next(ctx) {
		var row struct {
			Name  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode medication count: %w", err)
		}
		out = append(out, ports.MedicationCount{Name: row.Name, Count: row.Count})
	}
	return out, cur.Err()
}

// RecentOrders returns the newest orders joined with the customer's name.
func (r *DashboardRepository) RecentOrders(ctx context.Context, limit int) ([]ports.RecentOrder, error) {
	cur, err := r.db.Collection(orderCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []ports.RecentOrder
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode recent order: %w", err)
		}

		name := "Unknown"
		if oid, err := primitive.ObjectIDFromHex(doc.UserID); err == nil {
			var u struct {
				Name string `bson:"name"`
			}
			if err := r.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err == nil {
				name = u.Name
			}
		}

		id := doc.ID.Hex()
		out = append(out, ports.RecentOrder{
			ID:           id,
			OrderNumber:  orderNumber(id),
			CustomerName: name,
			Status:       doc.Status,
			Total:        doc.Total,
			CreatedAt:    doc.CreatedAt,
		})
	}
	return out, cur.Err()
}

// orderNumber renders the short human-facing order label shown on the dashboard.
func orderNumber(id string) string {
	short := id
	if len(short) > 5 {
		short = short[:5]
	}
	return "Order #" + strings.ToUpper(short)
}
