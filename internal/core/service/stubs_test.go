package service

import (
	"context"
	"sort"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubShopRepo struct {
	rows    map[int64]*domain.Shop
	next    int64
	creates int
}

func newStubShopRepo() *stubShopRepo {
	return &stubShopRepo{rows: make(map[int64]*domain.Shop)}
}

func (r *stubShopRepo) seed(name string) int64 {
	res, _ := r.Create(context.Background(), &domain.Shop{Name: name, Address: "1 Main St", Phone: "555"})
	return res.InsertedID
}

func (r *stubShopRepo) List(_ context.Context) ([]domain.Shop, error) {
	out := make([]domain.Shop, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubShopRepo) FindByID(_ context.Context, id int64) (*domain.Shop, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrShopNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubShopRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *stubShopRepo) Create(_ context.Context, s *domain.Shop) (ports.MutationResult, error) {
	r.next++
	r.creates++
	clone := *s
	clone.ID = r.next
	r.rows[clone.ID] = &clone
	return ports.MutationResult{InsertedID: clone.ID, RowsAffected: 1}, nil
}

func (r *stubShopRepo) Update(_ context.Context, s *domain.Shop) (ports.MutationResult, error) {
	if _, ok := r.rows[s.ID]; !ok {
		return ports.MutationResult{}, nil
	}
	clone := *s
	r.rows[s.ID] = &clone
	return ports.MutationResult{RowsAffected: 1}, nil
}

func (r *stubShopRepo) Delete(_ context.Context, id int64) (ports.MutationResult, error) {
	if _, ok := r.rows[id]; !ok {
		return ports.MutationResult{}, nil
	}
	delete(r.rows, id)
	return ports.MutationResult{RowsAffected: 1}, nil
}

type stubEmployeeRepo struct {
	rows map[int64]*domain.Employee
	next int64
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{rows: make(map[int64]*domain.Employee)}
}

func (r *stubEmployeeRepo) seed(shopID int64, name string) int64 {
	res, _ := r.Create(context.Background(), &domain.Employee{ShopID: shopID, Name: name, Position: "clerk", Phone: "555", Status: "active"})
	return res.InsertedID
}

func (r *stubEmployeeRepo) List(_ context.Context, f domain.EmployeeFilter) ([]domain.Employee, error) {
	out := []domain.Employee{}
	for _, e := range r.rows {
		if f.ShopID != 0 && e.ShopID != f.ShopID {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) ExistsInShop(_ context.Context, id, shopID int64) (bool, error) {
	e, ok := r.rows[id]
	return ok && e.ShopID == shopID, nil
}

func (r *stubEmployeeRepo) CountByShop(_ context.Context, shopID int64) (int64, error) {
	var n int64
	for _, e := range r.rows {
		if e.ShopID == shopID {
			n++
		}
	}
	return n, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (ports.MutationResult, error) {
	r.next++
	clone := *e
	clone.ID = r.next
	r.rows[clone.ID] = &clone
	return ports.MutationResult{InsertedID: clone.ID, RowsAffected: 1}, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) (ports.MutationResult, error) {
	if _, ok := r.rows[e.ID]; !ok {
		return ports.MutationResult{}, nil
	}
	clone := *e
	r.rows[e.ID] = &clone
	return ports.MutationResult{RowsAffected: 1}, nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id int64) (ports.MutationResult, error) {
	if _, ok := r.rows[id]; !ok {
		return ports.MutationResult{}, nil
	}
	delete(r.rows, id)
	return ports.MutationResult{RowsAffected: 1}, nil
}

type stubDocumentRepo struct {
	rows  map[int64]*domain.Document
	types []domain.DocumentType
	next  int64
}

func newStubDocumentRepo() *stubDocumentRepo {
	return &stubDocumentRepo{rows: make(map[int64]*domain.Document)}
}

func (r *stubDocumentRepo) seed(shopID int64, employeeID *int64) int64 {
	res, _ := r.Create(context.Background(), &domain.Document{
		ShopID:         shopID,
		EmployeeID:     employeeID,
		DocumentType:   "Business License",
		DocumentNumber: "BL-1",
		Title:          "License",
		Status:         "active",
	})
	return res.InsertedID
}

func (r *stubDocumentRepo) List(_ context.Context, f domain.DocumentFilter) ([]domain.Document, error) {
	out := []domain.Document{}
	for _, d := range r.rows {
		if f.ShopID != 0 && d.ShopID != f.ShopID {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDocumentRepo) FindByID(_ context.Context, id int64) (*domain.Document, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDocumentRepo) CountByShop(_ context.Context, shopID int64) (int64, error) {
	var n int64
	for _, d := range r.rows {
		if d.ShopID == shopID {
			n++
		}
	}
	return n, nil
}

func (r *stubDocumentRepo) CountByEmployee(_ context.Context, employeeID int64) (int64, error) {
	var n int64
	for _, d := range r.rows {
		if d.EmployeeID != nil && *d.EmployeeID == employeeID {
			n++
		}
	}
	return n, nil
}

func (r *stubDocumentRepo) Create(_ context.Context, d *domain.Document) (ports.MutationResult, error) {
	r.next++
	clone := *d
	clone.ID = r.next
	r.rows[clone.ID] = &clone
	return ports.MutationResult{InsertedID: clone.ID, RowsAffected: 1}, nil
}

func (r *stubDocumentRepo) Update(_ context.Context, d *domain.Document) (ports.MutationResult, error) {
	if _, ok := r.rows[d.ID]; !ok {
		return ports.MutationResult{}, nil
	}
	clone := *d
	r.rows[d.ID] = &clone
	return ports.MutationResult{RowsAffected: 1}, nil
}

func (r *stubDocumentRepo) Delete(_ context.Context, id int64) (ports.MutationResult, error) {
	if _, ok := r.rows[id]; !ok {
		return ports.MutationResult{}, nil
	}
	delete(r.rows, id)
	return ports.MutationResult{RowsAffected: 1}, nil
}

func (r *stubDocumentRepo) ListTypes(_ context.Context) ([]domain.DocumentType, error) {
	return r.types, nil
}

func (r *stubDocumentRepo) States(_ context.Context, shopID int64) ([]domain.DocumentState, error) {
	out := []domain.DocumentState{}
	for _, d := range r.rows {
		if shopID != 0 && d.ShopID != shopID {
			continue
		}
		out = append(out, domain.DocumentState{Status: d.Status, ExpiryDate: d.ExpiryDate})
	}
	return out, nil
}

type stubUserRepo struct {
	rows map[int64]*domain.User
	next int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{rows: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.rows {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.rows {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) taken(username string, except int64) bool {
	for _, u := range r.rows {
		if u.Username == username && u.ID != except {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (ports.MutationResult, error) {
	if r.taken(u.Username, 0) {
		return ports.MutationResult{}, domain.ErrUserExists
	}
	r.next++
	clone := *u
	clone.ID = r.next
	r.rows[clone.ID] = &clone
	return ports.MutationResult{InsertedID: clone.ID, RowsAffected: 1}, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, c ports.UserChanges) (ports.MutationResult, error) {
	u, ok := r.rows[id]
	if !ok {
		return ports.MutationResult{}, nil
	}
	if c.Username != nil {
		if r.taken(*c.Username, id) {
			return ports.MutationResult{}, domain.ErrUserExists
		}
		u.Username = *c.Username
	}
	if c.PasswordHash != nil {
		u.PasswordHash = *c.PasswordHash
	}
	u.Name, u.Role, u.Email = c.Name, c.Role, c.Email
	return ports.MutationResult{RowsAffected: 1}, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) (ports.MutationResult, error) {
	if _, ok := r.rows[id]; !ok {
		return ports.MutationResult{}, nil
	}
	delete(r.rows, id)
	return ports.MutationResult{RowsAffected: 1}, nil
}

type stubAuditRepo struct {
	entries   []domain.AuditEntry
	recordErr error
	lastLimit int
}

func (r *stubAuditRepo) Record(_ context.Context, e domain.AuditEntry) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *stubAuditRepo) List(_ context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	r.lastLimit = f.Limit
	return r.entries, nil
}

type stubIdempotency struct {
	keys map[string]int64
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]int64)}
}

func (s *stubIdempotency) Lookup(_ context.Context, scope, key string) (int64, bool, error) {
	id, ok := s.keys[scope+":"+key]
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, scope, key string, id int64) error {
	s.keys[scope+":"+key] = id
	return nil
}
