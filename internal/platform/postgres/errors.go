package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	// undefinedTableCode is raised when a query names a table that does not exist
	undefinedTableCode = "42P01"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"
)

var (
	// ErrSchemaMissing indicates the migrations have not been applied.
	ErrSchemaMissing = errors.New("database schema missing; run migrations")

	// ErrInvalidID indicates a row was rejected by the id check constraint.
	ErrInvalidID = errors.New("invalid person id")
)

// MapError maps a database error to a package error, wrapping the original
// to preserve context.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case undefinedTableCode:
			return fmt.Errorf("%w: %v", ErrSchemaMissing, err)
		case checkViolationCode:
			return fmt.Errorf("%w: check constraint violation (%s): %v", ErrInvalidID, pgErr.ConstraintName, err)
		}
	}

	return err
}
