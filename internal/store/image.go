package store

import (
	"context"
	"io"
)

// ImageStore persists uploaded images by file name.
type ImageStore interface {
	// Save writes the contents of src under name, replacing any existing
	// image with that name, and returns the number of bytes written.
	Save(ctx context.Context, name string, src io.Reader) (int64, error)
}
