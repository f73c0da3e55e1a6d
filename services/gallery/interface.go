package gallery

import (
	"context"
	"io"

	mediaRepo "tourbase/database/repository/media"
	"tourbase/models"
	"tourbase/services/storage"
)

// UploadInput describes one incoming gallery file.
type UploadInput struct {
	Kind        string
	Title       string
	Description string
	Tags        []string
	UploadedBy  string
	File        io.Reader
}

// GalleryService manages the media library behind the admin gallery screen.
type GalleryService interface {
	Upload(ctx context.Context, in UploadInput) (*models.MediaAsset, error)
	Get(ctx context.Context, id string) (*models.MediaAsset, error)
	List(ctx context.Context, q mediaRepo.MediaQuery) (*models.MediaPage, error)
	UpdateMeta(ctx context.Context, id string, updates map[string]interface{}) (*models.MediaAsset, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (deleted []string, failed []string)
}

// DefaultGalleryService implements GalleryService on Cloudinary + Mongo.
type DefaultGalleryService struct {
	Repo    mediaRepo.MediaRepository
	Storage storage.StorageService
}
