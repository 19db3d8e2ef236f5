package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/kalitafoto/backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// ErrObjectNotFound is returned by Delete when the key does not exist
// in the bucket.
var ErrObjectNotFound = errors.New("storage: object not found")

// MinioStorage implements Storage against any S3-compatible endpoint.
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	log       *zerolog.Logger
}

var _ Storage = (*MinioStorage)(nil)

// NewMinioStorage connects to the object store and ensures the
// configured bucket exists.
func NewMinioStorage(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*MinioStorage, error) {
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check storage bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create storage bucket: %w", err)
		}
		logger.Info().Str("bucket", cfg.Storage.Bucket).Msg("created storage bucket")
	}

	publicURL := strings.TrimSuffix(cfg.Storage.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.Storage.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Storage.Endpoint, cfg.Storage.Bucket)
	}

	return &MinioStorage{
		client:    client,
		bucket:    cfg.Storage.Bucket,
		publicURL: publicURL,
		log:       logger,
	}, nil
}

// objectKey builds a collision-free key: the original filename is only
// kept as the extension, the basename is a fresh UUID.
func objectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)
}

func (s *MinioStorage) objectURL(key string) string {
	return s.publicURL + "/" + key
}

func (s *MinioStorage) Upload(ctx context.Context, folder string, in UploadInput) (*UploadedFile, error) {
	key := objectKey(folder, in.Filename)

	_, err := s.client.PutObject(ctx, s.bucket, key, in.Reader, in.Size, minio.PutObjectOptions{
		ContentType: in.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	s.log.Debug().Str("key", key).Int64("size", in.Size).Msg("uploaded object")

	return &UploadedFile{
		URL:      s.objectURL(key),
		Key:      key,
		Folder:   folder,
		Filename: in.Filename,
		Size:     in.Size,
	}, nil
}

func (s *MinioStorage) UploadMultiple(ctx context.Context, folder string, in []UploadInput) ([]UploadedFile, error) {
	uploaded := make([]UploadedFile, 0, len(in))
	for _, file := range in {
		result, err := s.Upload(ctx, folder, file)
		if err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, *result)
	}
	return uploaded, nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return ErrObjectNotFound
		}
		return fmt.Errorf("failed to stat object %q: %w", key, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}

	s.log.Debug().Str("key", key).Msg("deleted object")
	return nil
}
