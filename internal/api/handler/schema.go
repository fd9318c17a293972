package handler

import "github.com/shoprecords/records-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    userSummary `json:"user"`
}

type verifyResponse struct {
	Success bool            `json:"success"`
	User    domain.Identity `json:"user"`
}

// --- Records ---

type shopRequest struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
	Email   string `json:"email"`
}

// Dates travel as strings so an empty value from a form clears the field
// and a malformed one yields a field-level message.
type employeeRequest struct {
	ShopID   int64  `json:"shop_id"  validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Position string `json:"position" validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
	HireDate string `json:"hire_date"`
	Status   string `json:"status"`
}

type documentRequest struct {
	ShopID         int64  `json:"shop_id"         validate:"required"`
	EmployeeID     *int64 `json:"employee_id"`
	DocumentType   string `json:"document_type"   validate:"required"`
	DocumentNumber string `json:"document_number" validate:"required"`
	Title          string `json:"title"           validate:"required"`
	Description    string `json:"description"`
	IssueDate      string `json:"issue_date"`
	ExpiryDate     string `json:"expiry_date"`
	Status         string `json:"status"`
	FileData       string `json:"file_data"`
	FileName       string `json:"file_name"`
	FileType       string `json:"file_type"`
	Notes          string `json:"notes"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// Username and Password are optional on update.
type updateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// --- Upload ---

type uploadResponse struct {
	Success bool                 `json:"success"`
	File    *domain.UploadedFile `json:"file"`
}
