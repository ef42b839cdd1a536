// Package error defines domain-specific errors for the Macro Tracker application.
package error

import "errors"

// Error kinds shared by every feature. Feature errors wrap one of these so callers
// can classify a failure with errors.Is without knowing the feature.
var (
	// ErrValidation is the kind of every input validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is the kind of every failed lookup.
	ErrNotFound = errors.New("not found")

	// ErrPersistence is the kind of a failed blob write or read.
	ErrPersistence = errors.New("persistence error")

	// ErrPersistenceDecode is the kind of a stored blob that cannot be decoded.
	// It is recovered by falling back to the default state and never reaches a user.
	ErrPersistenceDecode = errors.New("persistence decode error")
)

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a failed lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
