package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrInvalidCredentials, ErrUnauthorized},
		{ErrInvalidToken, ErrUnauthorized},
		{ErrShopNotFound, ErrNotFound},
		{ErrShopReference, ErrValidation},
		{ErrEmployeeReference, ErrValidation},
		{ErrShopHasEmployees, ErrConflict},
		{ErrUserExists, ErrConflict},
		{ErrProtectedAccount, ErrForbidden},
		{ErrPinnedAccount, ErrForbidden},
		{ErrEmptyUpload, ErrValidation},
		{ErrFileTooLarge, ErrValidation},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.kind) {
			t.Errorf("%q: expected kind %q", tt.err, tt.kind)
		}
	}
	if errors.Is(ErrShopReference, ErrNotFound) {
		t.Errorf("a broken reference must not read as not found")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-02-29", "2024-02-29", false},
		{"2024-02-29T23:10:00Z", "2024-02-29", false},
		{"29/02/2024", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseDate(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && d.String() != tt.want {
			t.Fatalf("ParseDate(%q) = %s, want %s", tt.in, d, tt.want)
		}
	}
}

func TestDate_JSONAndScan(t *testing.T) {
	var doc struct {
		Expiry *Date `json:"expiry_date"`
	}
	if err := json.Unmarshal([]byte(`{"expiry_date":"2025-12-31"}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, _ := json.Marshal(doc)
	if string(out) != `{"expiry_date":"2025-12-31"}` {
		t.Fatalf("marshal = %s", out)
	}

	var d Date
	if err := d.Scan(time.Date(2025, 3, 4, 15, 0, 0, 0, time.UTC)); err != nil || d.String() != "2025-03-04" {
		t.Fatalf("scan time: %v %s", err, d)
	}
	if err := d.Scan([]byte("2025-05-06")); err != nil || d.String() != "2025-05-06" {
		t.Fatalf("scan bytes: %v %s", err, d)
	}
	if err := d.Scan(42); err == nil {
		t.Fatalf("expected error scanning int")
	}
}

func TestSummarizeDocuments(t *testing.T) {
	today, _ := ParseDate("2025-06-15")
	past, _ := ParseDate("2025-06-14")
	same, _ := ParseDate("2025-06-15")

	states := []DocumentState{
		{Status: DocumentStatusActive, ExpiryDate: &past},
		{Status: DocumentStatusExpired, ExpiryDate: &past},
		{Status: DocumentStatusInactive, ExpiryDate: &same},
		{Status: DocumentStatusActive},
		{Status: "archived", ExpiryDate: &past},
	}
	got := SummarizeDocuments(states, today)
	want := DocumentStats{Total: 5, Active: 2, Expired: 1, Inactive: 1, Overdue: 3}
	if got != want {
		t.Fatalf("SummarizeDocuments = %+v, want %+v", got, want)
	}
}

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"", RoleUser, nil},
		{"user", RoleUser, nil},
		{"admin", RoleAdmin, nil},
		{"superuser", "", ErrInvalidRole},
	}
	for _, tt := range tests {
		got, err := NormalizeRole(tt.in)
		if got != tt.want || err != tt.wantErr {
			t.Fatalf("NormalizeRole(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestDocumentValidate_Defaults(t *testing.T) {
	zero := int64(0)
	d := &Document{ShopID: 1, DocumentType: "Permit", DocumentNumber: "P-1", Title: "Permit", EmployeeID: &zero}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if d.EmployeeID != nil || d.Status != DocumentStatusActive {
		t.Fatalf("unexpected defaults: %+v", d)
	}
	if err := (&Document{ShopID: 1}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
