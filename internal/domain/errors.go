package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrAlreadyInProgress = errors.New("submission already in progress")
)

// ValidationError names the first required field that is missing or malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// UploadError is a failed poster upload. It never aborts a submission.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string { return fmt.Sprintf("upload %s: %v", e.Path, e.Err) }

func (e *UploadError) Unwrap() error { return e.Err }

// OwnershipWriteError is a failed content ownership insert. Nothing was written.
type OwnershipWriteError struct {
	Err error
}

func (e *OwnershipWriteError) Error() string { return fmt.Sprintf("reserve ownership: %v", e.Err) }

func (e *OwnershipWriteError) Unwrap() error { return e.Err }

// EventWriteError is a failed event insert. The ownership row has already been
// compensated (or the attempt logged) when this error is returned.
type EventWriteError struct {
	Err error
}

func (e *EventWriteError) Error() string { return fmt.Sprintf("persist event: %v", e.Err) }

func (e *EventWriteError) Unwrap() error { return e.Err }

// CompensationError is a failed compensating action. It is logged, never returned
// to the caller in place of the error that triggered the compensation.
type CompensationError struct {
	Step string
	Err  error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("compensate %s: %v", e.Step, e.Err)
}

func (e *CompensationError) Unwrap() error { return e.Err }
