package ports

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// AuthService defines registration, login, and identity lookup.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
}
