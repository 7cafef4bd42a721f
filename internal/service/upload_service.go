package service

import (
	"context"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/phrazzld/person-api/internal/domain"
	"github.com/phrazzld/person-api/internal/store"
)

// defaultImageFormat is reported when the client sends no part content type.
const defaultImageFormat = "application/octet-stream"

// UploadObserver is notified of every stored upload.
type UploadObserver interface {
	ObserveUpload(bytes int64)
}

// UploadService stores uploaded images.
type UploadService interface {
	// Upload stores the file under the base name of its client-supplied name.
	Upload(ctx context.Context, field string, fh *multipart.FileHeader) (domain.ImageUpload, error)
}

type uploadService struct {
	images   store.ImageStore
	observer UploadObserver
	logger   *slog.Logger
}

// NewUploadService creates an UploadService. observer may be nil.
func NewUploadService(images store.ImageStore, observer UploadObserver, logger *slog.Logger) (UploadService, error) {
	if images == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "image store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &uploadService{
		images:   images,
		observer: observer,
		logger:   logger.With("component", "upload_service"),
	}, nil
}

func (s *uploadService) Upload(ctx context.Context, field string, fh *multipart.FileHeader) (domain.ImageUpload, error) {
	name := filepath.Base(filepath.Clean("/" + filepath.ToSlash(fh.Filename)))
	if name == "" || name == "." || name == ".." || name == "/" {
		return domain.ImageUpload{}, filenameError(field, fh.Filename)
	}

	src, err := fh.Open()
	if err != nil {
		return domain.ImageUpload{}, NewServiceError("upload_image", "failed to open uploaded file", err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close uploaded file", "error", cerr)
		}
	}()

	n, err := s.images.Save(ctx, name, src)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store image", "error", err, "filename", name)
		return domain.ImageUpload{}, NewServiceError("upload_image", "failed to store image", err)
	}

	if s.observer != nil {
		s.observer.ObserveUpload(n)
	}

	format := fh.Header.Get("Content-Type")
	if format == "" {
		format = defaultImageFormat
	}

	s.logger.InfoContext(ctx, "image stored", "filename", name, "bytes", n)
	return domain.ImageUpload{
		Filename: name,
		Format:   format,
		SizeKB:   domain.SizeKB(n),
	}, nil
}
