package error

import "fmt"

// Food domain errors.
var (
	// ErrFoodNameRequired is returned when a food name is empty after trimming.
	ErrFoodNameRequired = fmt.Errorf("%w: food name is required", ErrValidation)

	// ErrNegativeMacro is returned when a macro amount is below zero.
	ErrNegativeMacro = fmt.Errorf("%w: macro grams must not be negative", ErrValidation)

	// ErrFoodNotFound is returned when a food id does not resolve.
	ErrFoodNotFound = fmt.Errorf("%w: food not found", ErrNotFound)

	// ErrInvalidImportFile is returned when a food CSV cannot be parsed at all.
	ErrInvalidImportFile = fmt.Errorf("%w: invalid food import file", ErrValidation)

	// ErrImportTooLarge is returned when an uploaded food CSV exceeds the size limit.
	ErrImportTooLarge = fmt.Errorf("%w: food import file too large", ErrValidation)
)

// FoodErrorCode defines error codes for food errors.
// Format: FOD-XXYYYY where XX is category and YYYY is specific error.
type FoodErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFoodNameRequired  FoodErrorCode = "FOD-010001"
	ErrCodeNegativeMacro     FoodErrorCode = "FOD-010002"
	ErrCodeInvalidImportFile FoodErrorCode = "FOD-010003"
	ErrCodeMissingFoodFields FoodErrorCode = "FOD-010004"
	ErrCodeImportTooLarge    FoodErrorCode = "FOD-010005"

	// Lookup errors (02XXXX)
	ErrCodeFoodNotFound FoodErrorCode = "FOD-020001"

	// Throttling errors (03XXXX)
	ErrCodeImportRateLimited FoodErrorCode = "FOD-030001"

	// Internal errors (99XXXX)
	ErrCodeFoodPersistence FoodErrorCode = "FOD-990001"
)

// FoodError represents a food error with code and message.
type FoodError struct {
	Code    FoodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FoodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FoodError) Unwrap() error {
	return e.Err
}

// NewFoodError creates a new FoodError with the given code and message.
func NewFoodError(code FoodErrorCode, message string, err error) *FoodError {
	return &FoodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
