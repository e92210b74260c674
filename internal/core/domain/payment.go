package domain

import (
	"errors"
	"time"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethod stores an opaque payment instrument reference for a user.
// Details is whatever the payment provider hands back (masked card, token);
// this service never sees raw card numbers.
type PaymentMethod struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
