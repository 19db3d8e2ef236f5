package service

import (
	"context"
	"errors"
	"strings"

	"github.com/kalitafoto/backend/internal/errs"
	"github.com/kalitafoto/backend/internal/storage"
)

// folderPrefix namespaces every portfolio object in the bucket.
const folderPrefix = "kalita_fotografia_"

// PortfolioService manages portfolio media in the object store.
type PortfolioService struct {
	store storage.Storage
}

// NewPortfolioService wires the portfolio use cases onto the store.
func NewPortfolioService(store storage.Storage) *PortfolioService {
	return &PortfolioService{store: store}
}

// FolderName maps a human category like "Ensaios Externos" to the
// bucket folder "kalita_fotografia_ensaios-externos".
func FolderName(category string) string {
	slug := strings.ToLower(strings.TrimSpace(category))
	slug = strings.Join(strings.Fields(slug), "-")
	return folderPrefix + slug
}

// UploadImage stores one image under the category folder.
func (s *PortfolioService) UploadImage(ctx context.Context, category string, in storage.UploadInput) (*storage.UploadedFile, error) {
	return s.store.Upload(ctx, FolderName(category), in)
}

// UploadImages stores a batch of images under the category folder.
func (s *PortfolioService) UploadImages(ctx context.Context, category string, in []storage.UploadInput) ([]storage.UploadedFile, error) {
	return s.store.UploadMultiple(ctx, FolderName(category), in)
}

// DeleteImage removes the object identified by key, returning a 404
// error when it does not exist.
func (s *PortfolioService) DeleteImage(ctx context.Context, key string) error {
	err := s.store.Delete(ctx, key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return errs.NewNotFoundError("Image not found", true, nil)
	}
	return err
}
