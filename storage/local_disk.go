package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type localDiskUploader struct {
	dir           string
	publicBaseURL string
}

// NewLocalDiskUploader stores files under dir and serves them from
// publicBaseURL (the static file route of the HTTP server).
func NewLocalDiskUploader(dir, publicBaseURL string) (FileUploader, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &localDiskUploader{
		dir:           dir,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

func (u *localDiskUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	// Keys are generated server-side, but never trust them as paths.
	name := filepath.Base(key)
	target := filepath.Join(u.dir, name)

	file, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file %s: %w", name, err)
	}
	size, err := io.Copy(file, reader)
	if err != nil {
		file.Close()
		os.Remove(target)
		return nil, fmt.Errorf("failed to write upload file %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(target)
		return nil, fmt.Errorf("failed to close upload file %s: %w", name, err)
	}

	return &UploadResult{
		Key:      name,
		Location: u.GetPublicURL(name),
		Size:     size,
	}, nil
}

func (u *localDiskUploader) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(u.dir, filepath.Base(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete upload file %s: %w", key, err)
	}
	return nil
}

func (u *localDiskUploader) GetPublicURL(key string) string {
	if key == "" {
		return ""
	}
	return u.publicBaseURL + "/" + filepath.Base(key)
}
