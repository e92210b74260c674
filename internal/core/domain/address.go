package domain

import (
	"errors"
	"time"
)

var ErrAddressNotFound = errors.New("address not found")

// Address is a shipping destination owned by a user.
type Address struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state,omitempty"`
	Zip       string    `json:"zip"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
