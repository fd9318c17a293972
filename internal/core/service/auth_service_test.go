package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoprecords/records-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	res, err := repo.Create(context.Background(), &domain.User{Username: username, PasswordHash: string(hash), Name: username, Role: role})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	u, _ := repo.FindByID(context.Background(), res.InsertedID)
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "carol", "s3cret", domain.RoleAdmin)
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != seeded.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin || claims["username"] != "carol" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "dave", "goodpass", domain.RoleUser)
	svc := NewAuthService(repo, "secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "dave", "badpass")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected no token on failure")
	}
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized kind")
	}
}

func TestAuthService_Login_UnknownUserLooksLikeBadPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}

func TestAuthService_VerifyToken_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "erin", "password1", domain.RoleUser)
	svc := NewAuthService(repo, "secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "erin", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	id, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	want := domain.Identity{ID: seeded.ID, Username: "erin", Role: domain.RoleUser}
	if id != want {
		t.Fatalf("identity = %+v, want %+v", id, want)
	}
}

func TestAuthService_VerifyToken_Rejects(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	sign := func(method jwt.SigningMethod, key interface{}, exp time.Time) string {
		t.Helper()
		tok := jwt.NewWithClaims(method, jwt.MapClaims{
			"id":       1,
			"username": "frank",
			"role":     domain.RoleAdmin,
			"exp":      exp.Unix(),
		})
		s, err := tok.SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}

	valid := sign(jwt.SigningMethodHS256, []byte("secret"), time.Now().Add(time.Hour))
	parts := strings.Split(valid, ".")
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"id":2,"username":"mallory","role":"admin","exp":4102444800}`))
	tampered := parts[0] + "." + forged + "." + parts[2]

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1, "role": domain.RoleAdmin})
	noExpSigned, _ := noExp.SignedString([]byte("secret"))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"expired", sign(jwt.SigningMethodHS256, []byte("secret"), time.Now().Add(-time.Minute))},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("other"), time.Now().Add(time.Hour))},
		{"wrong algorithm", sign(jwt.SigningMethodHS512, []byte("secret"), time.Now().Add(time.Hour))},
		{"tampered", tampered},
		{"no expiry", noExpSigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.VerifyToken(tt.token); err != domain.ErrInvalidToken {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
