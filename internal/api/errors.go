package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/person-api/internal/api/router"
	"github.com/phrazzld/person-api/internal/api/shared"
	"github.com/phrazzld/person-api/internal/binding"
	"github.com/phrazzld/person-api/internal/domain"
	"github.com/phrazzld/person-api/internal/service/auth"
	"github.com/phrazzld/person-api/internal/validation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Routing errors
	case errors.Is(err, router.ErrRouteNotFound):
		return http.StatusNotFound
	case errors.Is(err, router.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed

	// Request size
	case errors.Is(err, binding.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, domain.ErrPersonNotFound):
		return http.StatusNotFound

	// Rejected input
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPersonID),
		errors.Is(err, domain.ErrInvalidFilename):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return describeFieldErrors(fieldErrs)
	}

	switch {
	case errors.Is(err, router.ErrRouteNotFound):
		return "Not Found"
	case errors.Is(err, router.ErrMethodNotAllowed):
		return "Method Not Allowed"
	case errors.Is(err, binding.ErrBodyTooLarge):
		return "Request body too large"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Invalid token"

	case errors.Is(err, domain.ErrPersonNotFound):
		return domain.PersonNotFoundMessage
	case errors.Is(err, domain.ErrInvalidPersonID):
		return "person_id: ensure this value is greater than 0 (gt=0)"
	case errors.Is(err, domain.ErrInvalidFilename):
		return "Invalid file name"

	default:
		return "An unexpected error occurred"
	}
}

// describeFieldErrors names the first offending field and rule and counts the rest.
func describeFieldErrors(errs validation.Errors) string {
	first := errs[0]
	detail := fmt.Sprintf("%s: %s (%s)", first.Field, first.Message, first.Rule)
	if extra := len(errs) - 1; extra > 0 {
		detail = fmt.Sprintf("%s and %d more", detail, extra)
	}
	return detail
}

// HandleAPIError writes the error response for err: status from
// MapErrorToStatusCode, detail from GetSafeErrorMessage, and every field
// error when err carries validation failures.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	detail := GetSafeErrorMessage(err)

	var opts []shared.ResponseOption
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		opts = append(opts, shared.WithFieldErrors(fieldErrs))
	}
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, detail, err, opts...)
}
