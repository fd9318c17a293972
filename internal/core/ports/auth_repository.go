package ports

import (
	"context"

	"github.com/shoprecords/records-api/internal/core/domain"
)

// MutationResult reports the effect of a single write statement.
type MutationResult struct {
	InsertedID   int64
	RowsAffected int64
}

// UserChanges carries a user update. Nil pointers leave the column as is.
type UserChanges struct {
	Name         string
	Role         string
	Email        string
	Username     *string
	PasswordHash *string
}

// UserRepository defines persistence for user accounts. Create and Update
// return domain.ErrUserExists on a duplicate username.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (MutationResult, error)
	Update(ctx context.Context, id int64, changes UserChanges) (MutationResult, error)
	Delete(ctx context.Context, id int64) (MutationResult, error)
}
