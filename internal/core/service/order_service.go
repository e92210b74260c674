package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// OrderService implements order management with status state-machine checks.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.List(ctx, userID)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if in.UserID == "" {
		return nil, domain.ErrMissingFields
	}

	status := in.Status
	if status == "" {
		status = domain.OrderPending
	}
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:         in.UserID,
		PrescriptionID: in.PrescriptionID,
		Total:          in.Total,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Msg("order created")
	return created, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrMissingFields
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Str("status", string(status)).Msg("order status updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
