package ports

import (
	"context"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// CreateOrderInput carries the fields for a new order. Status defaults to
// pending when empty.
type CreateOrderInput struct {
	UserID         string
	PrescriptionID string
	Total          float64
	Status         domain.OrderStatus
}

type OrderService interface {
	// List returns orders, restricted to userID when non-empty.
	List(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	// UpdateStatus applies the order status state machine; disallowed
	// transitions fail with domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
