package service

import (
	"context"
	"time"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// InventoryService implements warehouse stock management. When the caller
// does not supply a stock status it is derived from the quantity.
type InventoryService struct {
	repo ports.InventoryRepository
}

func NewInventoryService(repo ports.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.repo.List(ctx)
}

func (s *InventoryService) Get(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InventoryService) Create(ctx context.Context, in ports.CreateInventoryInput) (*domain.InventoryItem, error) {
	if in.Name == "" || in.Dosage == "" || in.Supplier == "" || in.ExpiryDate.IsZero() {
		return nil, domain.ErrMissingFields
	}

	status := in.Status
	if status == "" {
		status = domain.DeriveStockStatus(in.Quantity)
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.InventoryItem{
		Name:       in.Name,
		Dosage:     in.Dosage,
		Quantity:   in.Quantity,
		Supplier:   in.Supplier,
		ExpiryDate: in.ExpiryDate,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *InventoryService) Update(ctx context.Context, id string, in ports.UpdateInventoryInput) (*domain.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Dosage != nil {
		item.Dosage = *in.Dosage
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = *in.ExpiryDate
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	switch {
	case in.Status != nil:
		item.Status = *in.Status
	case in.Quantity != nil:
		item.Status = domain.DeriveStockStatus(*in.Quantity)
	}
	item.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, item)
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
