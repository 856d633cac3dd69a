package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the caller's credentials were rejected.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput means the caller's input was malformed.
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError wraps any storage-level failure (connectivity, constraint
// violation, serialization conflict) that is not a plain missing record.
// The original cause stays attached for diagnostics; callers surface it as
// an internal error without leaking the cause to end users.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
