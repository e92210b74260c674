package ports

import (
	"context"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// CreateProductInput carries the fields for a new catalog product.
type CreateProductInput struct {
	Name        string
	Description string
	Dosage      string
	Category    string
	Price       float64
	ImageURL    string
	Quantity    int
	Supplier    string
}

// UpdateProductInput carries partial product updates. Nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Dosage      *string
	Category    *string
	Price       *float64
	ImageURL    *string
	Quantity    *int
	Supplier    *string
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines the persistence interface for products.
// FindByNameFold matches the name case-insensitively, skipping excludeID when
// non-empty (used to let a product keep its own name on update).
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByNameFold(ctx context.Context, name, excludeID string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
