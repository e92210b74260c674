package service

import (
	"context"
	"time"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// AddressService implements address-book management.
type AddressService struct {
	repo ports.AddressRepository
}

func NewAddressService(repo ports.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

func (s *AddressService) List(ctx context.Context, userID string) ([]domain.Address, error) {
	return s.repo.List(ctx, userID)
}

func (s *AddressService) Get(ctx context.Context, id string) (*domain.Address, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AddressService) Create(ctx context.Context, in ports.CreateAddressInput) (*domain.Address, error) {
	if in.UserID == "" || in.Street == "" || in.City == "" || in.Country == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Address{
		UserID:    in.UserID,
		Street:    in.Street,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		Country:   in.Country,
		IsDefault: in.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *AddressService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
