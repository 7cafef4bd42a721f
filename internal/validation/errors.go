package validation

import (
	"errors"
	"strings"

	"github.com/phrazzld/person-api/internal/domain"
)

// Kind classifies why a value was rejected.
type Kind string

// Failure kinds reported for rejected input.
const (
	KindMissingParameter    Kind = "MissingParameter"
	KindConstraintViolation Kind = "ConstraintViolation"
	KindInvalidEnumValue    Kind = "InvalidEnumValue"
)

// Sentinel errors matching each Kind with errors.Is.
var (
	ErrMissingParameter    = errors.New("missing parameter")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrInvalidEnumValue    = errors.New("invalid enum value")
)

func (k Kind) sentinel() error {
	switch k {
	case KindMissingParameter:
		return ErrMissingParameter
	case KindInvalidEnumValue:
		return ErrInvalidEnumValue
	default:
		return ErrConstraintViolation
	}
}

// FieldError describes one rejected field.
type FieldError struct {
	// Field is the client-facing name, e.g. "age" or "person.email".
	Field string `json:"field"`

	// In names the request source for parameters: path, query, header and so on.
	In string `json:"in,omitempty"`

	// Kind is the failure class.
	Kind Kind `json:"kind"`

	// Rule is the violated rule with its parameter, e.g. "max=50".
	Rule string `json:"rule"`

	// Message is a human-readable explanation.
	Message string `json:"message"`
}

// Error implements error.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Is matches the sentinel for the error's Kind and domain.ErrValidation.
func (e FieldError) Is(target error) bool {
	return target == e.Kind.sentinel() || target == domain.ErrValidation
}

// Errors aggregates every field that failed in one request.
type Errors []FieldError

// Error joins all field errors.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes each FieldError so errors.Is sees every kind.
func (e Errors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, fe := range e {
		errs = append(errs, fe)
	}
	return errs
}

// Has reports whether field failed with the given kind.
func (e Errors) Has(field string, kind Kind) bool {
	for _, fe := range e {
		if fe.Field == field && fe.Kind == kind {
			return true
		}
	}
	return false
}

// Prefix returns a copy with every field name qualified by prefix.
func (e Errors) Prefix(prefix string) Errors {
	if prefix == "" {
		return e
	}
	out := make(Errors, len(e))
	for i, fe := range e {
		fe.Field = prefix + "." + fe.Field
		out[i] = fe
	}
	return out
}

// Merge appends the field errors carried by err, if any, and reports whether
// err was a validation failure.
func (e *Errors) Merge(err error) bool {
	var fieldErrs Errors
	if errors.As(err, &fieldErrs) {
		*e = append(*e, fieldErrs...)
		return true
	}
	var fe FieldError
	if errors.As(err, &fe) {
		*e = append(*e, fe)
		return true
	}
	return false
}

// Err returns e as an error, or nil when it is empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
