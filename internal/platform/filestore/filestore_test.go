package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	n, err := s.Save(context.Background(), "cat.png", strings.NewReader("first version"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)

	n, err = s.Save(context.Background(), "cat.png", strings.NewReader("v2"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	data, err := os.ReadFile(filepath.Join(dir, "cat.png"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestSaveRejectsUnsafeNames(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", ".", "..", "../escape.png", "nested/cat.png"} {
		_, err := s.Save(context.Background(), name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrUnsafeName, "name %q", name)
	}
}

func TestSaveHonorsCancellation(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Save(ctx, "cat.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
