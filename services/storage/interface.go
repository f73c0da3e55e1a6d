package storage

import (
	"context"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// UploadResult describes a stored binary.
type UploadResult struct {
	PublicID string
	URL      string
	Bytes    int64
}

// StorageService abstracts binary media storage (Cloudinary in production).
type StorageService interface {
	Upload(ctx context.Context, file io.Reader, destFolder, resourceType string) (*UploadResult, error)
	Delete(ctx context.Context, publicID, resourceType string) error
	DownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
	SecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}
