package ports

import (
	"context"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// CreateAddressInput carries the fields for a new address.
type CreateAddressInput struct {
	UserID    string
	Street    string
	City      string
	State     string
	Zip       string
	Country   string
	IsDefault bool
}

type AddressService interface {
	List(ctx context.Context, userID string) ([]domain.Address, error)
	Get(ctx context.Context, id string) (*domain.Address, error)
	Create(ctx context.Context, in CreateAddressInput) (*domain.Address, error)
	Delete(ctx context.Context, id string) error
}

type AddressRepository interface {
	Create(ctx context.Context, a *domain.Address) (*domain.Address, error)
	FindByID(ctx context.Context, id string) (*domain.Address, error)
	List(ctx context.Context, userID string) ([]domain.Address, error)
	Delete(ctx context.Context, id string) error
}
