package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested data does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDatabase indicates a storage access failure. Details are kept
	// generic at the HTTP boundary to avoid leaking internals.
	ErrDatabase = errors.New("database operation failed")
)

// StorageError marks a failure inside the storage layer. It matches
// ErrDatabase under errors.Is so the HTTP boundary can map it without
// exposing the underlying driver message.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func (e *StorageError) Is(target error) bool {
	return target == ErrDatabase
}

// Storage wraps a storage-layer failure.
func Storage(op string, cause error) error {
	return &StorageError{Op: op, Cause: cause}
}

// MetricsError wraps a failure raised while computing metrics.
type MetricsError struct {
	Message string
	Cause   error
}

func (e *MetricsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MetricsError) Unwrap() error {
	return e.Cause
}

// NewMetricsError creates a MetricsError with the given message and cause.
func NewMetricsError(message string, cause error) *MetricsError {
	return &MetricsError{Message: message, Cause: cause}
}

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field         string
	Message       string
	RejectedValue any
}

// RequestValidationError carries per-field validation failures for a request.
type RequestValidationError struct {
	Errors []ValidationError
}

func (e *RequestValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Errors))
}

// ConstraintViolationError indicates the request violates business rules.
type ConstraintViolationError struct {
	Errors []ValidationError
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint validation failed for %d rule(s)", len(e.Errors))
}

// ParameterTypeError indicates a request parameter had the wrong type.
type ParameterTypeError struct {
	Parameter    string
	ExpectedType string
}

func (e *ParameterTypeError) Error() string {
	return fmt.Sprintf("parameter '%s' should be of type %s", e.Parameter, e.ExpectedType)
}
