package api

import (
	"context"
	"fmt"

	"github.com/phrazzld/person-api/internal/binding"
	"github.com/phrazzld/person-api/internal/service"
)

const paramImage = "image"

// UploadHandler handles image uploads.
type UploadHandler struct {
	uploads service.UploadService
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(uploads service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// PostImage handles POST /post-image.
func (h *UploadHandler) PostImage(ctx context.Context, in *binding.Values) (any, error) {
	fh := in.File(paramImage)
	if fh == nil {
		return nil, fmt.Errorf("image file not bound")
	}
	return h.uploads.Upload(ctx, paramImage, fh)
}
