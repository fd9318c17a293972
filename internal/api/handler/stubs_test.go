package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

// newJSONContext builds an echo context with the validator installed.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) VerifyToken(string) (domain.Identity, error) {
	return domain.Identity{}, domain.ErrInvalidToken
}

type stubShopService struct {
	lastInput ports.ShopInput
	lastID    int64
	err       error
}

func (s *stubShopService) List(context.Context) ([]domain.Shop, error) {
	return []domain.Shop{{ID: 2, Name: "Harbour"}, {ID: 1, Name: "Main Street"}}, s.err
}

func (s *stubShopService) Get(_ context.Context, id int64) (*domain.Shop, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Shop{ID: id, Name: "Main Street"}, nil
}

func (s *stubShopService) Create(_ context.Context, in ports.ShopInput) (*domain.Shop, error) {
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Shop{ID: 9, Name: in.Name, Address: in.Address, Phone: in.Phone, Email: in.Email}, nil
}

func (s *stubShopService) Update(_ context.Context, id int64, in ports.ShopInput) (*domain.Shop, error) {
	s.lastID, s.lastInput = id, in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Shop{ID: id, Name: in.Name}, nil
}

func (s *stubShopService) Delete(_ context.Context, id int64) error {
	s.lastID = id
	return s.err
}

type stubEmployeeService struct {
	lastFilter domain.EmployeeFilter
	lastInput  ports.EmployeeInput
}

func (s *stubEmployeeService) List(_ context.Context, f domain.EmployeeFilter) ([]domain.Employee, error) {
	s.lastFilter = f
	return []domain.Employee{}, nil
}

func (s *stubEmployeeService) Get(_ context.Context, id int64) (*domain.Employee, error) {
	return &domain.Employee{ID: id}, nil
}

func (s *stubEmployeeService) Create(_ context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	s.lastInput = in
	return &domain.Employee{ID: 4, ShopID: in.ShopID, Name: in.Name, HireDate: in.HireDate}, nil
}

func (s *stubEmployeeService) Update(_ context.Context, id int64, in ports.EmployeeInput) (*domain.Employee, error) {
	s.lastInput = in
	return &domain.Employee{ID: id, ShopID: in.ShopID, Name: in.Name}, nil
}

func (s *stubEmployeeService) Delete(context.Context, int64) error { return nil }

type stubDocumentService struct {
	lastFilter domain.DocumentFilter
	lastInput  ports.DocumentInput
	lastShopID int64
}

func (s *stubDocumentService) List(_ context.Context, f domain.DocumentFilter) ([]domain.Document, error) {
	s.lastFilter = f
	return []domain.Document{}, nil
}

func (s *stubDocumentService) Get(_ context.Context, id int64) (*domain.Document, error) {
	return &domain.Document{ID: id}, nil
}

func (s *stubDocumentService) ListTypes(context.Context) ([]domain.DocumentType, error) {
	return []domain.DocumentType{{ID: 1, Name: "Business License"}}, nil
}

func (s *stubDocumentService) Create(_ context.Context, in ports.DocumentInput) (*domain.Document, error) {
	s.lastInput = in
	return &domain.Document{ID: 12, ShopID: in.ShopID, Title: in.Title, ExpiryDate: in.ExpiryDate}, nil
}

func (s *stubDocumentService) Update(_ context.Context, id int64, in ports.DocumentInput) (*domain.Document, error) {
	s.lastInput = in
	return &domain.Document{ID: id, Title: in.Title}, nil
}

func (s *stubDocumentService) Delete(context.Context, int64) error { return nil }

func (s *stubDocumentService) StatsSummary(_ context.Context, shopID int64) (*domain.DocumentStats, error) {
	s.lastShopID = shopID
	return &domain.DocumentStats{Total: 3, Active: 2, Inactive: 1, Overdue: 1}, nil
}

type stubUserService struct {
	lastCreate ports.CreateUserInput
	lastUpdate ports.UpdateUserInput
	deleteErr  error
}

func (s *stubUserService) List(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: 1, Username: "admin", PasswordHash: "$2a$10$secret"}}, nil
}

func (s *stubUserService) Get(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id}, nil
}

func (s *stubUserService) Create(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
	s.lastCreate = in
	return &domain.User{ID: 5, Username: in.Username, Name: in.Name, Role: domain.RoleUser, PasswordHash: "hash"}, nil
}

func (s *stubUserService) Update(_ context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	s.lastUpdate = in
	return &domain.User{ID: id, Name: in.Name}, nil
}

func (s *stubUserService) Delete(context.Context, int64) error { return s.deleteErr }

type stubUploadService struct {
	filename string
	content  string
	err      error
}

func (s *stubUploadService) Accept(_ context.Context, filename string, r io.Reader) (*domain.UploadedFile, error) {
	b, _ := io.ReadAll(r)
	s.filename, s.content = filename, string(b)
	if s.err != nil {
		return nil, s.err
	}
	return &domain.UploadedFile{Filename: filename, MimeType: "text/plain", Size: int64(len(b)), DataURI: "data:text/plain;base64,aGk="}, nil
}

type stubAuditService struct {
	lastFilter domain.AuditFilter
}

func (s *stubAuditService) List(_ context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	s.lastFilter = f
	return []domain.AuditEntry{}, nil
}
