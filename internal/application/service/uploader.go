package service

import (
	"context"
	"io"
)

type UploadOptions struct {
	Folder   string
	PublicID string
	// ResourceType is "image", "raw" or "auto" (default).
	ResourceType string
}

type UploadResult struct {
	URL      string
	PublicID string
	Format   string
	Bytes    int
}

// Uploader stores media files (press assets, blog images, backups) outside
// the content store.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, opts UploadOptions) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
