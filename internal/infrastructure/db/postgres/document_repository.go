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

// DocumentRepository implements ports.DocumentRepository.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// joined selects documents with shop, employee and type names. The type
// join is by name and may match nothing.
func (r *DocumentRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("documents d").
		Select("d.*, s.name AS shop_name, e.name AS employee_name, dt.name AS document_type_name").
		Joins("LEFT JOIN shops s ON s.id = d.shop_id").
		Joins("LEFT JOIN employees e ON e.id = d.employee_id").
		Joins("LEFT JOIN document_types dt ON dt.name = d.document_type")
}

func (r *DocumentRepository) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	docs := []domain.Document{}
	if err := r.listQuery(ctx, filter).Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// listQuery ANDs the non-zero filter fields, newest first.
func (r *DocumentRepository) listQuery(ctx context.Context, filter domain.DocumentFilter) *gorm.DB {
	q := r.joined(ctx)
	if filter.ShopID != 0 {
		q = q.Where("d.shop_id = ?", filter.ShopID)
	}
	if filter.EmployeeID != 0 {
		q = q.Where("d.employee_id = ?", filter.EmployeeID)
	}
	if filter.DocumentType != "" {
		q = q.Where("d.document_type = ?", filter.DocumentType)
	}
	if filter.Status != "" {
		q = q.Where("d.status = ?", filter.Status)
	}
	return q.Order("d.created_at DESC, d.id DESC")
}

func (r *DocumentRepository) FindByID(ctx context.Context, id int64) (*domain.Document, error) {
	var d domain.Document
	err := r.joined(ctx).Where("d.id = ?", id).Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find document %d: %w", id, err)
	}
	return &d, nil
}

func (r *DocumentRepository) CountByShop(ctx context.Context, shopID int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Document{}).Where("shop_id = ?", shopID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count documents of shop %d: %w", shopID, err)
	}
	return n, nil
}

func (r *DocumentRepository) CountByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Document{}).Where("employee_id = ?", employeeID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count documents of employee %d: %w", employeeID, err)
	}
	return n, nil
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Create(d)
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("insert document: %w", tx.Error)
	}
	return ports.MutationResult{InsertedID: d.ID, RowsAffected: tx.RowsAffected}, nil
}

func (r *DocumentRepository) Update(ctx context.Context, d *domain.Document) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Document{}).Where("id = ?", d.ID).Updates(map[string]any{
		"shop_id":         d.ShopID,
		"employee_id":     d.EmployeeID,
		"document_type":   d.DocumentType,
		"document_number": d.DocumentNumber,
		"title":           d.Title,
		"description":     d.Description,
		"issue_date":      d.IssueDate,
		"expiry_date":     d.ExpiryDate,
		"status":          d.Status,
		"file_data":       d.FileData,
		"file_name":       d.FileName,
		"file_type":       d.FileType,
		"notes":           d.Notes,
		"updated_at":      time.Now().UTC(),
	})
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("update document %d: %w", d.ID, tx.Error)
	}
	return result(tx), nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id int64) (ports.MutationResult, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Document{})
	if tx.Error != nil {
		return ports.MutationResult{}, fmt.Errorf("delete document %d: %w", id, tx.Error)
	}
	return result(tx), nil
}

func (r *DocumentRepository) ListTypes(ctx context.Context) ([]domain.DocumentType, error) {
	types := []domain.DocumentType{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("list document types: %w", err)
	}
	return types, nil
}

func (r *DocumentRepository) States(ctx context.Context, shopID int64) ([]domain.DocumentState, error) {
	states := []domain.DocumentState{}
	if err := r.statesQuery(ctx, shopID).Scan(&states).Error; err != nil {
		return nil, fmt.Errorf("document states: %w", err)
	}
	return states, nil
}

func (r *DocumentRepository) statesQuery(ctx context.Context, shopID int64) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Document{}).Select("status, expiry_date")
	if shopID != 0 {
		q = q.Where("shop_id = ?", shopID)
	}
	return q
}
