// Package postgres provides the PostgreSQL implementation of
// store.PersonRegistry, the connection setup for it, and the embedded goose
// migrations that create its schema.
package postgres
