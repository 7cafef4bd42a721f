package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		id   int
		want bool
	}{
		{"known id", []int{1, 2, 3, 4, 5}, 3, true},
		{"last id", []int{1, 2, 3, 4, 5}, 5, true},
		{"unknown id", []int{1, 2, 3, 4, 5}, 21, false},
		{"zero", []int{1, 2, 3, 4, 5}, 0, false},
		{"only configured ids", []int{10}, 3, false},
		{"configured id", []int{10}, 10, true},
		{"empty registry", nil, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := NewMemoryRegistry(tc.ids...).Exists(context.Background(), tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestMemoryRegistryConcurrentReads(t *testing.T) {
	r := NewMemoryRegistry(1, 2, 3)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			ok, err := r.Exists(context.Background(), id%5)
			assert.NoError(t, err)
			assert.Equal(t, id%5 >= 1 && id%5 <= 3, ok)
		}(i)
	}
	wg.Wait()
}
