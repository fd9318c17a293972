package domain

import (
	"strings"
	"time"
)

// Shop is a retail location owning employees and documents.
type Shop struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the fields required on create and update.
func (s *Shop) Validate() error {
	if blank(s.Name) || blank(s.Address) || blank(s.Phone) {
		return NewValidationError("name, address and phone are required")
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
