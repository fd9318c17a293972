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

// ShopRepository implements ports.ShopRepository.
type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

func (r *ShopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	shops := []domain.Shop{}
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return shops, nil
}

func (r *ShopRepository) FindByID(ctx context.Context, id int64) (*domain.Shop, error) {
	var shop domain.Shop
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find shop %d: %w", id, err)
	}
	return &shop, nil
}

func (r *ShopRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Shop{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("shop exists %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *ShopRepository) Create(ctx context.Context, shop *domain.Shop) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Create(shop)
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("insert shop: %w", tx.Error)
	}
	return ports.MutationResult{InsertedID: shop.ID, RowsAffected: tx.RowsAffected}, nil
}

func (r *ShopRepository) Update(ctx context.Context, shop *domain.Shop) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Shop{}).Where("id = ?", shop.ID).Updates(map[string]any{
		"name":       shop.Name,
		"address":    shop.Address,
		"phone":      shop.Phone,
		"email":      shop.Email,
		"updated_at": time.Now().UTC(),
	})
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("update shop %d: %w", shop.ID, tx.Error)
	}
	return result(tx), nil
}

func (r *ShopRepository) Delete(ctx context.Context, id int64) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Shop{})
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("delete shop %d: %w", id, tx.Error)
	}
	return result(tx), nil
}
