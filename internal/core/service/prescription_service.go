package service

import (
	"context"
	"time"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/ports"
)

// PrescriptionService implements prescription management.
type PrescriptionService struct {
	repo ports.PrescriptionRepository
}

func NewPrescriptionService(repo ports.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repo: repo}
}

func (s *PrescriptionService) List(ctx context.Context, userID string) ([]domain.Prescription, error) {
	return s.repo.List(ctx, userID)
}

func (s *PrescriptionService) Get(ctx context.Context, id string) (*domain.Prescription, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PrescriptionService) Create(ctx context.Context, in ports.CreatePrescriptionInput) (*domain.Prescription, error) {
	if in.UserID == "" || in.DoctorName == "" || in.Medication == "" {
		return nil, domain.ErrMissingFields
	}

	status := in.Status
	if status == "" {
		status = domain.PrescriptionPending
	}
	if !domain.ValidPrescriptionStatus(status) {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Prescription{
		UserID:       in.UserID,
		DoctorName:   in.DoctorName,
		Medication:   in.Medication,
		Dosage:       in.Dosage,
		Instructions: in.Instructions,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *PrescriptionService) UpdateStatus(ctx context.Context, id string, status domain.PrescriptionStatus) (*domain.Prescription, error) {
	if !domain.ValidPrescriptionStatus(status) {
		return nil, domain.ErrMissingFields
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *PrescriptionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
