package domain

import "time"

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Employee belongs to exactly one shop.
type Employee struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ShopID    int64     `json:"shop_id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IDNumber  string    `json:"id_number" gorm:"column:id_number"`
	HireDate  *Date     `json:"hire_date" gorm:"type:date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ShopName string `json:"shop_name,omitempty" gorm:"->"`
}

// Validate checks required fields and applies the default status.
func (e *Employee) Validate() error {
	if e.ShopID <= 0 || blank(e.Name) || blank(e.Position) || blank(e.Phone) {
		return NewValidationError("shop_id, name, position and phone are required")
	}
	if blank(e.Status) {
		e.Status = EmployeeStatusActive
	}
	return nil
}

// EmployeeFilter narrows employee listings.
type EmployeeFilter struct {
	ShopID int64 // 0 = all shops
}
