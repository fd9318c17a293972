package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	// ReservedAdminUsername names the bootstrap admin account. It can never
	// be deleted through the API.
	ReservedAdminUsername = "admin"

	MinPasswordLength = 6
)

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsReservedAdmin reports whether u is the undeletable bootstrap account.
func (u *User) IsReservedAdmin() bool {
	return u.Username == ReservedAdminUsername
}

// NormalizeRole applies the default role and rejects unknown ones.
func NormalizeRole(role string) (string, error) {
	switch strings.TrimSpace(role) {
	case "":
		return RoleUser, nil
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// CheckPassword enforces the password policy on a plaintext password.
func CheckPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
