package ports

import (
	"context"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// CreatePrescriptionInput carries the fields for a new prescription. Status
// defaults to pending when empty.
type CreatePrescriptionInput struct {
	UserID       string
	DoctorName   string
	Medication   string
	Dosage       string
	Instructions string
	Status       domain.PrescriptionStatus
}

type PrescriptionService interface {
	List(ctx context.Context, userID string) ([]domain.Prescription, error)
	Get(ctx context.Context, id string) (*domain.Prescription, error)
	Create(ctx context.Context, in CreatePrescriptionInput) (*domain.Prescription, error)
	UpdateStatus(ctx context.Context, id string, status domain.PrescriptionStatus) (*domain.Prescription, error)
	Delete(ctx context.Context, id string) error
}

type PrescriptionRepository interface {
	Create(ctx context.Context, p *domain.Prescription) (*domain.Prescription, error)
	FindByID(ctx context.Context, id string) (*domain.Prescription, error)
	List(ctx context.Context, userID string) ([]domain.Prescription, error)
	UpdateStatus(ctx context.Context, id string, status domain.PrescriptionStatus) (*domain.Prescription, error)
	Delete(ctx context.Context, id string) error
}
