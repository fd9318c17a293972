package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
	"github.com/shoprecords/records-api/internal/core/service"
)

type stubAuth struct{}

func (stubAuth) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (stubAuth) VerifyToken(token string) (domain.Identity, error) {
	switch token {
	case "admin-token":
		return domain.Identity{ID: 1, Username: "admin", Role: domain.RoleAdmin}, nil
	case "user-token":
		return domain.Identity{ID: 2, Username: "clerk", Role: domain.RoleUser}, nil
	}
	return domain.Identity{}, domain.ErrInvalidToken
}

type stubDocuments struct {
	ports.DocumentService
	typesCalled bool
}

func (s *stubDocuments) ListTypes(context.Context) ([]domain.DocumentType, error) {
	s.typesCalled = true
	return []domain.DocumentType{{ID: 1, Name: "Business License"}}, nil
}

type stubUsers struct {
	ports.UserService
}

func (stubUsers) List(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: 1, Username: "admin"}}, nil
}

func postBody(h http.Handler, target, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func multipartFile(t *testing.T, size int) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write(bytes.Repeat([]byte("a"), size))
	_ = w.Close()
	return buf.Bytes(), w.FormDataContentType()
}

func newTestRouter(docs *stubDocuments) http.Handler {
	return NewRouter(Services{
		Auth:      stubAuth{},
		Documents: docs,
		Users:     stubUsers{},
	}, Options{CORSOrigins: []string{"*"}}, zerolog.Nop())
}

func serve(h http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r := newTestRouter(&stubDocuments{})

	if rec := serve(r, http.MethodGet, "/api/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	if rec := serve(r, http.MethodGet, "/metrics", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	if rec := serve(r, http.MethodGet, "/api/health", ""); rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	r := newTestRouter(&stubDocuments{})

	for _, path := range []string{"/api/shops", "/api/documents/types/list", "/api/auth/verify", "/api/users"} {
		rec := serve(r, http.MethodGet, path, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Fatalf("%s: expected error envelope, got %q", path, rec.Body.String())
		}
	}

	if rec := serve(r, http.MethodGet, "/api/shops", "forged"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an invalid token, got %d", rec.Code)
	}
}

func TestRouter_StaticDocumentRoutesWinOverID(t *testing.T) {
	docs := &stubDocuments{}
	r := newTestRouter(docs)

	rec := serve(r, http.MethodGet, "/api/documents/types/list", "user-token")
	if rec.Code != http.StatusOK || !docs.typesCalled {
		t.Fatalf("expected types listing, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_AdminOnly(t *testing.T) {
	r := newTestRouter(&stubDocuments{})

	if rec := serve(r, http.MethodGet, "/api/users", "user-token"); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a plain user, got %d", rec.Code)
	}
	if rec := serve(r, http.MethodGet, "/api/users", "admin-token"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an admin, got %d", rec.Code)
	}
}

func TestRouter_LoginFailure(t *testing.T) {
	r := newTestRouter(&stubDocuments{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "token") {
		t.Fatalf("no token expected in %q", rec.Body.String())
	}
}

func TestRouter_OversizedUploadIsAlwaysFileTooLarge(t *testing.T) {
	r := NewRouter(Services{
		Auth:      stubAuth{},
		Documents: &stubDocuments{},
		Uploads:   service.NewUploadService(1024),
	}, Options{UploadMaxBytes: 1024}, zerolog.Nop())

	// One just over the ceiling, one well past the global body limit (1026K).
	for _, size := range []int{2048, 2 << 20} {
		body, ct := multipartFile(t, size)
		rec := postBody(r, UploadPath, ct, body)
		if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "file is too large") {
			t.Fatalf("size %d: expected 400 file is too large, got %d %q", size, rec.Code, rec.Body.String())
		}
	}

	body, ct := multipartFile(t, 100)
	if rec := postBody(r, UploadPath, ct, body); rec.Code != http.StatusOK {
		t.Fatalf("expected small upload to pass, got %d %q", rec.Code, rec.Body.String())
	}

	rec := postBody(r, "/api/documents", "application/json", bytes.Repeat([]byte(" "), 2<<20))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for an oversized json body, got %d", rec.Code)
	}
}

func TestBodyLimit(t *testing.T) {
	if got := bodyLimit(5 << 20); got != "11264K" {
		t.Fatalf("unexpected limit %q", got)
	}
	if got := bodyLimit(0); got != "11264K" {
		t.Fatalf("expected default, got %q", got)
	}
}
