package domain

import "time"

const (
	DocumentStatusActive   = "active"
	DocumentStatusExpired  = "expired"
	DocumentStatusInactive = "inactive"
)

// Document is a compliance record owned by a shop and optionally tied to one
// of its employees. The attached file lives inline as a data URI.
type Document struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	ShopID         int64     `json:"shop_id"`
	EmployeeID     *int64    `json:"employee_id"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	IssueDate      *Date     `json:"issue_date" gorm:"type:date"`
	ExpiryDate     *Date     `json:"expiry_date" gorm:"type:date"`
	Status         string    `json:"status"`
	FileData       string    `json:"file_data"`
	FileName       string    `json:"file_name"`
	FileType       string    `json:"file_type"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	ShopName         string  `json:"shop_name,omitempty" gorm:"->"`
	EmployeeName     *string `json:"employee_name,omitempty" gorm:"->"`
	DocumentTypeName *string `json:"document_type_name,omitempty" gorm:"->"`
}

// Validate checks required fields and applies the default status.
func (d *Document) Validate() error {
	if d.ShopID <= 0 || blank(d.DocumentType) || blank(d.DocumentNumber) || blank(d.Title) {
		return NewValidationError("shop_id, document_type, document_number and title are required")
	}
	if d.EmployeeID != nil && *d.EmployeeID <= 0 {
		d.EmployeeID = nil
	}
	if blank(d.Status) {
		d.Status = DocumentStatusActive
	}
	return nil
}

// DocumentFilter holds the AND-combined listing filters. Zero values mean
// "no filter".
type DocumentFilter struct {
	ShopID       int64
	EmployeeID   int64
	DocumentType string
	Status       string
}

// DocumentType is an advisory catalogue entry. Documents reference it by
// name only; nothing enforces the match.
type DocumentType struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	RequiredFields string    `json:"required_fields"`
	CreatedAt      time.Time `json:"created_at"`
}

// DocumentState is the slice of a document the stats summary needs.
type DocumentState struct {
	Status     string
	ExpiryDate *Date
}

// DocumentStats summarises documents by status and expiry.
type DocumentStats struct {
	Total    int64 `json:"total_documents"`
	Active   int64 `json:"active_documents"`
	Expired  int64 `json:"expired_documents"`
	Inactive int64 `json:"inactive_documents"`
	Overdue  int64 `json:"overdue_documents"`
}

// SummarizeDocuments tallies states. Overdue is computed from the expiry
// date alone, so an "active" or "expired" row past its expiry counts twice.
func SummarizeDocuments(states []DocumentState, today Date) DocumentStats {
	var st DocumentStats
	for _, s := range states {
		st.Total++
		switch s.Status {
		case DocumentStatusActive:
			st.Active++
		case DocumentStatusExpired:
			st.Expired++
		case DocumentStatusInactive:
			st.Inactive++
		}
		if s.ExpiryDate != nil && s.ExpiryDate.Before(today) {
			st.Overdue++
		}
	}
	return st
}
