package store

import "context"

// PersonRegistry answers whether a person id is known.
type PersonRegistry interface {
	// Exists reports whether id is registered. An error means the registry
	// could not be consulted, not that the id is unknown.
	Exists(ctx context.Context, id int) (bool, error)
}

// MemoryRegistry is a PersonRegistry backed by a fixed set of ids. It is
// never modified after construction, so concurrent reads need no locking.
type MemoryRegistry struct {
	ids map[int]struct{}
}

var _ PersonRegistry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates a registry containing exactly ids.
func NewMemoryRegistry(ids ...int) *MemoryRegistry {
	r := &MemoryRegistry{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
	return r
}

// Exists implements PersonRegistry.
func (r *MemoryRegistry) Exists(_ context.Context, id int) (bool, error) {
	_, ok := r.ids[id]
	return ok, nil
}
