package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/person-api/internal/domain"
	"github.com/phrazzld/person-api/internal/validation"
)

// ServiceError wraps unexpected failures with the operation that hit them.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_person", "upload_image")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err for operation. Domain sentinels and validation
// failures are returned unchanged so the API layer can map them.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrPersonNotFound) ||
		errors.Is(err, domain.ErrInvalidPersonID) ||
		errors.Is(err, domain.ErrValidation) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// filenameError reports an unusable upload name as a constraint violation on the file field.
func filenameError(field, name string) error {
	errs := validation.Errors{{
		Field:   field,
		In:      "file",
		Kind:    validation.KindConstraintViolation,
		Rule:    "filename",
		Message: fmt.Sprintf("%q is not a usable file name", name),
	}}
	return fmt.Errorf("%w: %w", domain.ErrInvalidFilename, errs)
}
