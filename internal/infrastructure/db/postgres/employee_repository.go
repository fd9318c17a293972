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

// EmployeeRepository implements ports.EmployeeRepository.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// joined selects employees with the owning shop's name.
func (r *EmployeeRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employees e").
		Select("e.*, s.name AS shop_name").
		Joins("LEFT JOIN shops s ON s.id = e.shop_id")
}

func (r *EmployeeRepository) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	if err := r.listQuery(ctx, filter).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) listQuery(ctx context.Context, filter domain.EmployeeFilter) *gorm.DB {
	q := r.joined(ctx)
	if filter.ShopID != 0 {
		q = q.Where("e.shop_id = ?", filter.ShopID)
	}
	return q.Order("e.created_at DESC, e.id DESC")
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	err := r.joined(ctx).Where("e.id = ?", id).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find employee %d: %w", id, err)
	}
	return &e, nil
}

func (r *EmployeeRepository) ExistsInShop(ctx context.Context, id, shopID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).
		Where("id = ? AND shop_id = ?", id, shopID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("employee %d in shop %d: %w", id, shopID, err)
	}
	return n > 0, nil
}

func (r *EmployeeRepository) CountByShop(ctx context.Context, shopID int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("shop_id = ?", shopID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count employees of shop %d: %w", shopID, err)
	}
	return n, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Create(e)
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("insert employee: %w", tx.Error)
	}
	return ports.MutationResult{InsertedID: e.ID, RowsAffected: tx.RowsAffected}, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("id = ?", e.ID).Updates(map[string]any{
		"shop_id":    e.ShopID,
		"name":       e.Name,
		"position":   e.Position,
		"phone":      e.Phone,
		"email":      e.Email,
		"id_number":  e.IDNumber,
		"hire_date":  e.HireDate,
		"status":     e.Status,
		"updated_at": time.Now().UTC(),
	})
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("update employee %d: %w", e.ID, tx.Error)
	}
	return result(tx), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Employee{})
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("delete employee %d: %w", id, tx.Error)
	}
	return result(tx), nil
}
