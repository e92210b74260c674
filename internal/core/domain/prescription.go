package domain

import (
	"errors"
	"time"
)

// PrescriptionStatus represents the review state of a prescription.
type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "pending"
	PrescriptionApproved  PrescriptionStatus = "approved"
	PrescriptionCompleted PrescriptionStatus = "completed"
	PrescriptionRejected  PrescriptionStatus = "rejected"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

// ValidPrescriptionStatus reports whether s is a known prescription status.
func ValidPrescriptionStatus(s PrescriptionStatus) bool {
	switch s {
	case PrescriptionPending, PrescriptionApproved, PrescriptionCompleted, PrescriptionRejected:
		return true
	}
	return false
}

// Prescription records a doctor-issued medication order for a customer.
type Prescription struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	DoctorName   string             `json:"doctor_name"`
	Medication   string             `json:"medication"`
	Dosage       string             `json:"dosage,omitempty"`
	Instructions string             `json:"instructions,omitempty"`
	Status       PrescriptionStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
