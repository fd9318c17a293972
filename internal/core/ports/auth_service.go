package ports

import (
	"context"

	"github.com/shoprecords/records-api/internal/core/domain"
)

// TokenVerifier validates bearer tokens. Implemented by AuthService and
// consumed by the auth middleware.
type TokenVerifier interface {
	VerifyToken(token string) (domain.Identity, error)
}

type AuthService interface {
	TokenVerifier
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// CreateUserInput carries the fields for a new account.
type CreateUserInput struct {
	Username string
	Password string
	Name     string
	Role     string
	Email    string
}

// UpdateUserInput carries a user update. Empty Username or Password leaves
// the stored value unchanged.
type UpdateUserInput struct {
	Username string
	Password string
	Name     string
	Role     string
	Email    string
}

// UserService manages accounts. Callers are expected to be admins.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
