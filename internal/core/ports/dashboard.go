package ports

import (
	"context"
	"time"
)

// MedicationCount is one row of the "top medications" ranking.
type MedicationCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// RecentOrder is a dashboard-only projection of an order joined with the
// customer's name.
type RecentOrder struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// DashboardStats is the aggregate snapshot rendered by the admin dashboard.
type DashboardStats struct {
	TotalUsers          int64             `json:"total_users"`
	TotalOrders         int64             `json:"total_orders"`
	TotalPrescriptions  int64             `json:"total_prescriptions"`
	TotalAddresses      int64             `json:"total_addresses"`
	TodaysSales         float64           `json:"todays_sales"`
	PrescriptionsFilled int64             `json:"prescriptions_filled"`
	PendingOrders       int64             `json:"pending_orders"`
	TopMedications      []MedicationCount `json:"top_medications"`
	RecentOrders        []RecentOrder     `json:"recent_orders"`
	GeneratedAt         time.Time         `json:"generated_at"`
}

// DashboardService produces the stats snapshot, preferring a cached copy.
type DashboardService interface {
	// Stats returns the snapshot and whether it was served from cache.
	Stats(ctx context.Context) (*DashboardStats, bool, error)
}

// DashboardRepository aggregates counters across the collections.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountPendingOrders(ctx context.Context) (int64, error)
	CountPrescriptions(ctx context.Context) (int64, error)
	CountCompletedPrescriptions(ctx context.Context) (int64, error)
	CountAddresses(ctx context.Context) (int64, error)
	SalesSince(ctx context.Context, from time.Time) (float64, error)
	TopMedications(ctx context.Context, limit int) ([]MedicationCount, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error)
}

// StatsCache stores a short-lived copy of the dashboard snapshot so repeated
// dashboard loads do not hammer the database.
type StatsCache interface {
	Get(ctx context.Context) (*DashboardStats, bool, error)
	Set(ctx context.Context, stats *DashboardStats) error
}
