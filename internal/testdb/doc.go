// Package testdb provides helpers for tests that run against a real
// Postgres database. Tests skip themselves unless a database URL is set in
// the environment, and each test body runs in a transaction that is rolled
// back afterwards.
package testdb
