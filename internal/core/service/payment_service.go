package service

import (
	"context"
	"time"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// PaymentMethodService implements stored-payment-method management.
type PaymentMethodService struct {
	repo ports.PaymentMethodRepository
}

func NewPaymentMethodService(repo ports.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{repo: repo}
}

func (s *PaymentMethodService) List(ctx context.Context, userID string) ([]domain.PaymentMethod, error) {
	return s.repo.List(ctx, userID)
}

func (s *PaymentMethodService) Get(ctx context.Context, id string) (*domain.PaymentMethod, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentMethodService) Create(ctx context.Context, in ports.CreatePaymentMethodInput) (*domain.PaymentMethod, error) {
	if in.UserID == "" || in.Type == "" || in.Details == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.PaymentMethod{
		UserID:    in.UserID,
		Type:      in.Type,
		Details:   in.Details,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *PaymentMethodService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
