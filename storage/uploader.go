package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	Size     int64
}

// FileUploader stores uploaded video files. Keys are flat file names
// (clip id plus extension); the backend decides where the bytes live.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}
