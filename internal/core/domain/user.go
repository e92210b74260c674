package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
	ErrForbidden          = errors.New("access forbidden")

	// ErrMissingJWTSecret marks a deployment without a signing secret.
	// Every code path that would issue or accept a token fails closed on it.
	ErrMissingJWTSecret = errors.New("jwt secret is not configured")
)

// ValidRole reports whether role is one of the two enumerated roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCustomer
}

// User is the identity record behind every authenticated request.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
