// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped by a more specific error.
	ErrValidation = errors.New("validation failed")

	// ErrPersonNotFound is returned when a person ID is not among the known IDs.
	ErrPersonNotFound = errors.New("person not found")

	// ErrInvalidPersonID is returned when a person ID is not a positive integer.
	ErrInvalidPersonID = errors.New("invalid person ID")

	// ErrInvalidFilename is returned when an uploaded file has no usable name.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrUnauthorized is returned when an operation requires a valid session.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// PersonNotFoundMessage is the client-facing detail for ErrPersonNotFound.
const PersonNotFoundMessage = "This person doesn't exist"
