package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

type stubUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	createFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) List(ctx context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id string) error { return nil }

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	return &domain.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Name:         "Alice",
		Role:         domain.RoleCustomer,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := hashedUser(t, "hunter22")
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "alice@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return user, nil
		},
	}
	svc := NewAuthService(repo, "secret", time.Hour)

	token, got, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("unexpected user: %+v", got)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["sub"] != "user-1" || claims["email"] != "alice@example.com" || claims["role"] != domain.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing")
	}
	until := time.Until(time.Unix(int64(exp), 0))
	if until <= 0 || until > time.Hour {
		t.Fatalf("unexpected expiry: %v", until)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := hashedUser(t, "hunter22")
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(repo, "secret", time.Hour)

	// Same error as a wrong password: accounts must not be enumerable.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			t.Fatalf("repo should not be reached")
			return nil, nil
		},
	}
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_MissingSecret(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			t.Fatalf("repo should not be reached")
			return nil, nil
		},
	}
	svc := NewAuthService(repo, "", time.Hour)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	if !errors.Is(err, domain.ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestAuthService_Login_LegacyPlaintextNeverVerifies(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:           "user-2",
				Email:        email,
				PasswordHash: "plaintext-password",
				Role:         domain.RoleCustomer,
			}, nil
		},
	}
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "old@example.com", "plaintext-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			created := *user
			created.ID = "user-9"
			return &created, nil
		},
	}
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Jane Doe", "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("new accounts must be customers, got %q", user.Role)
	}
	if user.PasswordHash == "hunter22" || !IsHashed(user.PasswordHash) {
		t.Fatalf("password stored unhashed")
	}
	if !CheckPassword("hunter22", user.PasswordHash) {
		t.Fatalf("stored hash does not verify")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: email}, nil
		},
	}
	svc := NewAuthService(repo, "secret", time.Hour)

	_, err := svc.Register(context.Background(), "Jane Doe", "jane@example.com", "hunter22")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			t.Fatalf("repo should not be reached")
			return nil, nil
		},
	}
	svc := NewAuthService(repo, "secret", time.Hour)

	for _, args := range [][3]string{
		{"", "jane@example.com", "pw"},
		{"Jane Doe", "", "pw"},
		{"Jane Doe", "jane@example.com", ""},
	} {
		if _, err := svc.Register(context.Background(), args[0], args[1], args[2]); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %v, got %v", args, err)
		}
	}
}
