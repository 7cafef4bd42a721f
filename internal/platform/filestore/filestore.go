// Package filestore implements store.ImageStore on the local file system.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phrazzld/person-api/internal/store"
)

// ErrUnsafeName is returned for names that would escape the storage directory.
var ErrUnsafeName = errors.New("unsafe file name")

// ImageStore writes images into a single directory.
type ImageStore struct {
	dir string
}

var _ store.ImageStore = (*ImageStore)(nil)

// New creates an ImageStore rooted at dir, creating the directory if needed.
func New(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save implements store.ImageStore. An existing file with the same name is truncated.
func (s *ImageStore) Save(ctx context.Context, name string, src io.Reader) (int64, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return 0, fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return 0, fmt.Errorf("failed to create image file: %w", err)
	}

	n, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, fmt.Errorf("failed to write image file: %w", err)
	}
	return n, nil
}
