package error

import (
	"errors"
	"fmt"
)

// ErrBlobNotFound is returned by a blob store when a key has never been written.
var ErrBlobNotFound = errors.New("blob not found")

// PersistenceDecodeError describes a stored blob that could not be decoded.
type PersistenceDecodeError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *PersistenceDecodeError) Error() string {
	return fmt.Sprintf("decode blob %q: %v", e.Key, e.Err)
}

// Unwrap exposes both the kind and the cause.
func (e *PersistenceDecodeError) Unwrap() []error {
	return []error{ErrPersistenceDecode, e.Err}
}

// NewPersistenceDecodeError creates a decode error for the given key.
func NewPersistenceDecodeError(key string, err error) *PersistenceDecodeError {
	return &PersistenceDecodeError{Key: key, Err: err}
}

// PersistenceWriteError describes a failed blob write.
type PersistenceWriteError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("write blob %q: %v", e.Key, e.Err)
}

// Unwrap exposes both the kind and the cause.
func (e *PersistenceWriteError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

// NewPersistenceWriteError creates a write error for the given key.
func NewPersistenceWriteError(key string, err error) *PersistenceWriteError {
	return &PersistenceWriteError{Key: key, Err: err}
}
