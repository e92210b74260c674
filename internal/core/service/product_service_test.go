package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type stubProductRepo struct {
	createFn         func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.Product, error)
	findByNameFoldFn func(ctx context.Context, name, excludeID string) (*domain.Product, error)
	updateFn         func(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

func (s *stubProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return s.createFn(ctx, product)
}

func (s *stubProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubProductRepo) FindByNameFold(ctx context.Context, name, excludeID string) (*domain.Product, error) {
	return s.findByNameFoldFn(ctx, name, excludeID)
}

func (s *stubProductRepo) List(ctx context.Context) ([]domain.Product, error) { return nil, nil }

func (s *stubProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return s.updateFn(ctx, product)
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) error { return nil }

func TestProductService_Create_TrimsName(t *testing.T) {
	repo := &stubProductRepo{
		findByNameFoldFn: func(ctx context.Context, name, excludeID string) (*domain.Product, error) {
			if name != "Aspirin" {
				t.Fatalf("duplicate check got untrimmed name %q", name)
			}
			return nil, domain.ErrProductNotFound
		},
		createFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			if product.Name != "Aspirin" {
				t.Fatalf("stored untrimmed name %q", product.Name)
			}
			created := *product
			created.ID = "prod-1"
			return &created, nil
		},
	}
	svc := NewProductService(repo, zerolog.Nop())

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     "  Aspirin  ",
		Category: "Pain Relief",
		Price:    5.99,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if product.ID != "prod-1" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestProductService_Create_DuplicateNameCaseInsensitive(t *testing.T) {
	repo := &stubProductRepo{
		findByNameFoldFn: func(ctx context.Context, name, excludeID string) (*domain.Product, error) {
			// The repository folds case, so "aspirin" finds "Aspirin".
			return &domain.Product{ID: "prod-1", Name: "Aspirin"}, nil
		},
		createFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			t.Fatalf("create must not run on duplicate")
			return nil, nil
		},
	}
	svc := NewProductService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "aspirin", Category: "Pain Relief"})
	if !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
}

func TestProductService_Create_MissingFields(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "   ", Category: "x"}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for blank name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Aspirin"}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for missing category, got %v", err)
	}
}

func TestProductService_Update_KeepsOwnName(t *testing.T) {
	existing := &domain.Product{ID: "prod-1", Name: "Aspirin", Category: "Pain Relief"}
	repo := &stubProductRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			copied := *existing
			return &copied, nil
		},
		findByNameFoldFn: func(ctx context.Context, name, excludeID string) (*domain.Product, error) {
			if excludeID != "prod-1" {
				t.Fatalf("duplicate check must exclude the product itself, got %q", excludeID)
			}
			return nil, domain.ErrProductNotFound
		},
		updateFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			return product, nil
		},
	}
	svc := NewProductService(repo, zerolog.Nop())

	name := "Aspirin"
	price := 6.49
	product, err := svc.Update(context.Background(), "prod-1", ports.UpdateProductInput{Name: &name, Price: &price})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if product.Price != 6.49 {
		t.Fatalf("price not applied: %+v", product)
	}
}

func TestProductService_Update_PartialLeavesRestAlone(t *testing.T) {
	repo := &stubProductRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Aspirin", Category: "Pain Relief", Price: 5.99, Quantity: 50}, nil
		},
		updateFn: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			return product, nil
		},
	}
	svc := NewProductService(repo, zerolog.Nop())

	qty := 30
	product, err := svc.Update(context.Background(), "prod-1", ports.UpdateProductInput{Quantity: &qty})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if product.Quantity != 30 {
		t.Fatalf("quantity not applied")
	}
	if product.Name != "Aspirin" || product.Price != 5.99 {
		t.Fatalf("untouched fields changed: %+v", product)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := &stubProductRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	svc := NewProductService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
