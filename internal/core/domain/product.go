package domain

import (
	"errors"
	"time"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product name already in use")
)

// Product is a catalog item sold by the pharmacy. Product names are unique
// case-insensitively: "Aspirin" and "aspirin" are the same product.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Dosage      string    `json:"dosage,omitempty"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	Quantity    int       `json:"quantity"`
	Supplier    string    `json:"supplier,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
