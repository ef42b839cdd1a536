package error

import "fmt"

// Entry domain errors.
var (
	// ErrInvalidServings is returned when servings is zero or negative.
	ErrInvalidServings = fmt.Errorf("%w: servings must be greater than zero", ErrValidation)

	// ErrEntryFoodNotFound is returned when an entry references an unknown food.
	ErrEntryFoodNotFound = fmt.Errorf("%w: food not found for entry", ErrNotFound)
)

// EntryErrorCode defines error codes for ledger entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidServings    EntryErrorCode = "ENT-010001"
	ErrCodeMissingEntryFields EntryErrorCode = "ENT-010002"
	ErrCodeInvalidEntryDate   EntryErrorCode = "ENT-010003"

	// Lookup errors (02XXXX)
	ErrCodeEntryFoodNotFound EntryErrorCode = "ENT-020001"

	// Internal errors (99XXXX)
	ErrCodeEntryPersistence EntryErrorCode = "ENT-990001"
)

// EntryError represents a ledger entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
