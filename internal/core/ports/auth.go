package ports

import (
	"context"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

// AuthService implements the login/register flows and token issuance.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token together
	// with the user it belongs to. Unknown email and wrong password collapse
	// into the same domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register creates a customer account. It never issues a token; the
	// client is expected to log in afterwards.
	Register(ctx context.Context, fullName, email, password string) (*domain.User, error)
}

// UserRepository defines the persistence interface for user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
