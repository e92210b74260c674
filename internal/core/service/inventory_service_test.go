package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

type stubInventoryRepo struct {
	createFn   func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	findByIDFn func(ctx context.Context, id string) (*domain.InventoryItem, error)
	updateFn   func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
}

func (s *stubInventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	return s.createFn(ctx, item)
}

func (s *stubInventoryRepo) FindByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubInventoryRepo) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return nil, nil
}

func (s *stubInventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	return s.updateFn(ctx, item)
}

func (s *stubInventoryRepo) Delete(ctx context.Context, id string) error { return nil }

func TestDeriveStockStatus(t *testing.T) {
	cases := []struct {
		quantity int
		want     domain.StockStatus
	}{
		{-1, domain.StockOut},
		{0, domain.StockOut},
		{1, domain.StockLow},
		{9, domain.StockLow},
		{10, domain.StockIn},
		{500, domain.StockIn},
	}
	for _, tc := range cases {
		if got := domain.DeriveStockStatus(tc.quantity); got != tc.want {
			t.Errorf("DeriveStockStatus(%d) = %s, want %s", tc.quantity, got, tc.want)
		}
	}
}

func TestInventoryService_Create_DerivesStatus(t *testing.T) {
	repo := &stubInventoryRepo{
		createFn: func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
			if item.Status != domain.StockLow {
				t.Fatalf("expected low_stock, got %s", item.Status)
			}
			created := *item
			created.ID = "inv-1"
			return &created, nil
		},
	}
	svc := NewInventoryService(repo)

	item, err := svc.Create(context.Background(), ports.CreateInventoryInput{
		Name:       "Amoxicillin",
		Dosage:     "250mg",
		Quantity:   5,
		Supplier:   "GSK",
		ExpiryDate: time.Now().AddDate(1, 0, 0),
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if item.ID != "inv-1" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestInventoryService_Create_ExplicitStatusWins(t *testing.T) {
	repo := &stubInventoryRepo{
		createFn: func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
			if item.Status != domain.StockOut {
				t.Fatalf("explicit status overridden: %s", item.Status)
			}
			return item, nil
		},
	}
	svc := NewInventoryService(repo)

	_, err := svc.Create(context.Background(), ports.CreateInventoryInput{
		Name:       "Amoxicillin",
		Dosage:     "250mg",
		Quantity:   100,
		Supplier:   "GSK",
		ExpiryDate: time.Now().AddDate(1, 0, 0),
		Status:     domain.StockOut,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
}

func TestInventoryService_Create_MissingFields(t *testing.T) {
	svc := NewInventoryService(&stubInventoryRepo{})

	_, err := svc.Create(context.Background(), ports.CreateInventoryInput{Name: "Amoxicillin"})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestInventoryService_Update_RederivesStatusOnQuantityChange(t *testing.T) {
	repo := &stubInventoryRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.InventoryItem, error) {
			return &domain.InventoryItem{ID: id, Name: "Amoxicillin", Quantity: 50, Status: domain.StockIn}, nil
		},
		updateFn: func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
			return item, nil
		},
	}
	svc := NewInventoryService(repo)

	qty := 0
	item, err := svc.Update(context.Background(), "inv-1", ports.UpdateInventoryInput{Quantity: &qty})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if item.Status != domain.StockOut {
		t.Fatalf("status not re-derived: %s", item.Status)
	}
}

func TestInventoryService_Update_ExplicitStatusWins(t *testing.T) {
	repo := &stubInventoryRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.InventoryItem, error) {
			return &domain.InventoryItem{ID: id, Name: "Amoxicillin", Quantity: 50, Status: domain.StockIn}, nil
		},
		updateFn: func(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
			return item, nil
		},
	}
	svc := NewInventoryService(repo)

	qty := 0
	status := domain.StockIn
	item, err := svc.Update(context.Background(), "inv-1", ports.UpdateInventoryInput{Quantity: &qty, Status: &status})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if item.Status != domain.StockIn {
		t.Fatalf("explicit status overridden: %s", item.Status)
	}
}
