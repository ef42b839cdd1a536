package error

import "fmt"

// Goals domain errors.
var (
	// ErrNegativeGoal is returned when any daily target is below zero.
	ErrNegativeGoal = fmt.Errorf("%w: goal values must not be negative", ErrValidation)
)

// GoalsErrorCode defines error codes for goals errors.
// Format: GLS-XXYYYY where XX is category and YYYY is specific error.
type GoalsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeGoal       GoalsErrorCode = "GLS-010001"
	ErrCodeMissingGoalsFields GoalsErrorCode = "GLS-010002"

	// Internal errors (99XXXX)
	ErrCodeGoalsPersistence GoalsErrorCode = "GLS-990001"
)

// GoalsError represents a goals error with code and message.
type GoalsError struct {
	Code    GoalsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalsError) Unwrap() error {
	return e.Err
}

// NewGoalsError creates a new GoalsError with the given code and message.
func NewGoalsError(code GoalsErrorCode, message string, err error) *GoalsError {
	return &GoalsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
