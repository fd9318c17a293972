package domain

import "errors"

// Error kinds. Every domain error wraps exactly one of these so the transport
// layer can map it to a status code with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a domain error with a client-facing message and a kind.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind so errors.Is(err, ErrValidation) holds.
func (e *Error) Unwrap() error { return e.kind }

// NewValidationError returns an ad-hoc validation error carrying msg.
func NewValidationError(msg string) error {
	return newError(ErrValidation, msg)
}

var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid username or password")
	ErrInvalidToken       = newError(ErrUnauthorized, "invalid or expired token")

	ErrShopNotFound     = newError(ErrNotFound, "shop not found")
	ErrEmployeeNotFound = newError(ErrNotFound, "employee not found")
	ErrDocumentNotFound = newError(ErrNotFound, "document not found")
	ErrUserNotFound     = newError(ErrNotFound, "user not found")

	// Broken references on write are client errors, not 404s.
	ErrShopReference     = newError(ErrValidation, "shop not found")
	ErrEmployeeReference = newError(ErrValidation, "employee not found or not in this shop")

	ErrShopHasEmployees     = newError(ErrConflict, "cannot delete shop: it still has employees")
	ErrShopHasDocuments     = newError(ErrConflict, "cannot delete shop: it still has documents")
	ErrEmployeeHasDocuments = newError(ErrConflict, "cannot delete employee: it still has documents")
	ErrUserExists           = newError(ErrConflict, "username already exists")

	ErrPasswordTooShort  = newError(ErrValidation, "password must be at least 6 characters")
	ErrInvalidRole       = newError(ErrValidation, "role must be admin or user")
	ErrProtectedAccount  = newError(ErrForbidden, "the primary admin account cannot be deleted")
	ErrPinnedAccount     = newError(ErrForbidden, "the primary admin account cannot be renamed or demoted")
	ErrUnsupportedFile   = newError(ErrValidation, "unsupported file type")
	ErrFileTooLarge      = newError(ErrValidation, "file is too large")
	ErrEmptyUpload       = newError(ErrValidation, "file is empty")
	ErrMissingUploadFile = newError(ErrValidation, "no file uploaded")
)
