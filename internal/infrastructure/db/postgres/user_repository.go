package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where(query, arg).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Create(user)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ports.MutationResult{}, domain.ErrUserExists
		}
		return ports.MutationResult{}, fmt.Errorf("insert user: %w", tx.Error)
	}
	return ports.MutationResult{InsertedID: user.ID, RowsAffected: tx.RowsAffected}, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, changes ports.UserChanges) (ports.MutationResult, error) {
	cols := map[string]any{
		"name":       changes.Name,
		"role":       changes.Role,
		"email":      changes.Email,
		"updated_at": time.Now().UTC(),
	}
	if changes.Username != nil {
		cols["username"] = *changes.Username
	}
	if changes.PasswordHash != nil {
		cols["password_hash"] = *changes.PasswordHash
	}

	tx := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(cols)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ports.MutationResult{}, domain.ErrUserExists
		}
		return ports.MutationResult{}, fmt.Errorf("update user %d: %w", id, tx.Error)
	}
	return result(tx), nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{})
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("delete user %d: %w", id, tx.Error)
	}
	return result(tx), nil
}
