package ports

import (
	"context"
	"io"

	"github.com/shoprecords/records-api/internal/core/domain"
)

// ShopInput carries the writable shop fields. IdempotencyKey is only
// honoured by Create.
type ShopInput struct {
	Name           string
	Address        string
	Phone          string
	Email          string
	IdempotencyKey string
}

// EmployeeInput carries the writable employee fields.
type EmployeeInput struct {
	ShopID         int64
	Name           string
	Position       string
	Phone          string
	Email          string
	IDNumber       string
	HireDate       *domain.Date
	Status         string
	IdempotencyKey string
}

// DocumentInput carries the writable document fields.
type DocumentInput struct {
	ShopID         int64
	EmployeeID     *int64
	DocumentType   string
	DocumentNumber string
	Title          string
	Description    string
	IssueDate      *domain.Date
	ExpiryDate     *domain.Date
	Status         string
	FileData       string
	FileName       string
	FileType       string
	Notes          string
	IdempotencyKey string
}

type ShopService interface {
	List(ctx context.Context) ([]domain.Shop, error)
	Get(ctx context.Context, id int64) (*domain.Shop, error)
	Create(ctx context.Context, in ShopInput) (*domain.Shop, error)
	Update(ctx context.Context, id int64, in ShopInput) (*domain.Shop, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeService interface {
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id int64, in EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type DocumentService interface {
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	Get(ctx context.Context, id int64) (*domain.Document, error)
	ListTypes(ctx context.Context) ([]domain.DocumentType, error)
	Create(ctx context.Context, in DocumentInput) (*domain.Document, error)
	Update(ctx context.Context, id int64, in DocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, id int64) error
	StatsSummary(ctx context.Context, shopID int64) (*domain.DocumentStats, error)
}

// UploadService validates an uploaded file and re-encodes it as a data URI.
// It never persists anything.
type UploadService interface {
	Accept(ctx context.Context, filename string, r io.Reader) (*domain.UploadedFile, error)
}

// AuditService exposes the audit trail to admins.
type AuditService interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
}
