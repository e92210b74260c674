package ports

import (
	"context"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// CreatePaymentMethodInput carries the fields for a new payment method.
type CreatePaymentMethodInput struct {
	UserID  string
	Type    string
	Details string
}

type PaymentMethodService interface {
	List(ctx context.Context, userID string) ([]domain.PaymentMethod, error)
	Get(ctx context.Context, id string) (*domain.PaymentMethod, error)
	Create(ctx context.Context, in CreatePaymentMethodInput) (*domain.PaymentMethod, error)
	Delete(ctx context.Context, id string) error
}

type PaymentMethodRepository interface {
	Create(ctx context.Context, pm *domain.PaymentMethod) (*domain.PaymentMethod, error)
	FindByID(ctx context.Context, id string) (*domain.PaymentMethod, error)
	List(ctx context.Context, userID string) ([]domain.PaymentMethod, error)
	Delete(ctx context.Context, id string) error
}
