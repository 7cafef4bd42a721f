// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic. An in-memory PersonRegistry lives here; database
// and disk implementations live under internal/platform.
package store
