package ports

import (
	"context"

	"github.com/shoprecords/records-api/internal/core/domain"
)

// ShopRepository defines persistence for shops.
type ShopRepository interface {
	List(ctx context.Context) ([]domain.Shop, error)
	FindByID(ctx context.Context, id int64) (*domain.Shop, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, shop *domain.Shop) (MutationResult, error)
	Update(ctx context.Context, shop *domain.Shop) (MutationResult, error)
	Delete(ctx context.Context, id int64) (MutationResult, error)
}

// EmployeeRepository defines persistence for employees. Reads include the
// owning shop's name.
type EmployeeRepository interface {
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	// ExistsInShop reports whether employee id exists and belongs to shopID.
	ExistsInShop(ctx context.Context, id, shopID int64) (bool, error)
	CountByShop(ctx context.Context, shopID int64) (int64, error)
	Create(ctx context.Context, e *domain.Employee) (MutationResult, error)
	Update(ctx context.Context, e *domain.Employee) (MutationResult, error)
	Delete(ctx context.Context, id int64) (MutationResult, error)
}

// DocumentRepository defines persistence for documents and the document
// type catalogue. Reads include shop, employee and type names.
type DocumentRepository interface {
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	FindByID(ctx context.Context, id int64) (*domain.Document, error)
	CountByShop(ctx context.Context, shopID int64) (int64, error)
	CountByEmployee(ctx context.Context, employeeID int64) (int64, error)
	Create(ctx context.Context, d *domain.Document) (MutationResult, error)
	Update(ctx context.Context, d *domain.Document) (MutationResult, error)
	Delete(ctx context.Context, id int64) (MutationResult, error)
	ListTypes(ctx context.Context) ([]domain.DocumentType, error)
	// States returns status and expiry for every document, optionally
	// restricted to one shop (shopID 0 = all).
	States(ctx context.Context, shopID int64) ([]domain.DocumentState, error)
}

// AuditRepository stores the mutation audit trail.
type AuditRepository interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
}

// IdempotencyStore remembers which record a client-supplied key created.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (id int64, found bool, err error)
	Remember(ctx context.Context, scope, key string, id int64) error
}
