// Package storage abstracts the object store used for portfolio media.
//
// The production implementation targets an S3-compatible host through
// the MinIO client; handlers and services depend only on the Storage
// interface so tests can substitute in-memory fakes.
package storage

import (
	"context"
	"io"
)

// UploadInput carries one file to be stored, already validated by the
// caller (size, content type).
type UploadInput struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

// UploadedFile describes a stored object.
type UploadedFile struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Folder   string `json:"folder"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// Storage is the object-store contract used by the portfolio service.
type Storage interface {
	// Upload stores a single object under folder and returns its
	// public description.
	Upload(ctx context.Context, folder string, in UploadInput) (*UploadedFile, error)

	// UploadMultiple stores a batch of objects under folder. It fails
	// on the first error; previously uploaded files are reported so
	// callers can decide whether to keep or clean them up.
	UploadMultiple(ctx context.Context, folder string, in []UploadInput) ([]UploadedFile, error)

	// Delete removes the object identified by key. It returns
	// ErrObjectNotFound when no such object exists.
	Delete(ctx context.Context, key string) error
}
