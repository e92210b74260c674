package ports

import (
	"context"
	"time"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// CreateInventoryInput carries the fields for a new inventory item. Status is
// derived from Quantity when empty.
type CreateInventoryInput struct {
	Name       string
	Dosage     string
	Quantity   int
	Supplier   string
	ExpiryDate time.Time
	Status     domain.StockStatus
}

// UpdateInventoryInput carries partial inventory updates. Nil fields are left
// unchanged. When Quantity changes and Status is nil, the status is re-derived.
type UpdateInventoryInput struct {
	Name       *string
	Dosage     *string
	Quantity   *int
	Supplier   *string
	ExpiryDate *time.Time
	Status     *domain.StockStatus
}

type InventoryService interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Get(ctx context.Context, id string) (*domain.InventoryItem, error)
	Create(ctx context.Context, in CreateInventoryInput) (*domain.InventoryItem, error)
	Update(ctx context.Context, id string, in UpdateInventoryInput) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	FindByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}
