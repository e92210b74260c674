package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// ProductService implements catalog management. Product names are unique
// case-insensitively; leading/trailing whitespace never counts.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Category == "" {
		return nil, domain.ErrMissingFields
	}

	if err := s.checkDuplicateName(ctx, name, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        name,
		Description: in.Description,
		Dosage:      in.Dosage,
		Category:    in.Category,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Quantity:    in.Quantity,
		Supplier:    in.Supplier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrMissingFields
		}
		if err := s.checkDuplicateName(ctx, name, id); err != nil {
			return nil, err
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Dosage != nil {
		product.Dosage = *in.Dosage
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	product.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// checkDuplicateName fails with ErrProductExists when another product already
// uses name, compared case-insensitively.
func (s *ProductService) checkDuplicateName(ctx context.Context, name, excludeID string) error {
	existing, err := s.repo.FindByNameFold(ctx, name, excludeID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil
		}
		return err
	}
	if existing != nil {
		return domain.ErrProductExists
	}
	return nil
}
