// Package common defines the error taxonomy shared by the store, its
// repositories and the service layer. Callers should use errors.Is to
// match the sentinel kinds.
package common

import (
	"errors"
	"fmt"
)

var (
	// Store lifecycle errors.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotInitialized   = errors.New("store not initialized")

	// Engine-level errors for an individual operation.
	ErrWriteFailed = errors.New("write failed")
	ErrReadFailed  = errors.New("read failed")

	// Semantically disallowed requests (deleting root, bad parent, ...).
	ErrInvalidOperation = errors.New("invalid operation")

	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
)

// StoreError is the failure result returned by every store operation.
// Kind is one of the sentinel errors above; Err carries the underlying cause.
type StoreError struct {
	Kind error
	Op   string
	ID   string
	Err  error
}

func (e *StoreError) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.ID != "" {
		msg = fmt.Sprintf("%s: %s (id=%s)", e.Op, e.Kind.Error(), e.ID)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the kind of this error.
func (e *StoreError) Is(target error) bool {
	return e.Kind == target
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError builds a StoreError of the given kind.
func NewStoreError(kind error, op, id string, err error) *StoreError {
	return &StoreError{Kind: kind, Op: op, ID: id, Err: err}
}

// KindOf returns the sentinel kind carried by err, or nil if err is not a
// StoreError.
func KindOf(err error) error {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return nil
}
