package mediaRepo

import (
	"context"

	"tourbase/models"
)

// MediaQuery describes gallery listing filters and paging.
type MediaQuery struct {
	Kind    string // image, video or pdf; empty means all
	Tag     string
	Page    int
	PerPage int
}

// MediaRepository defines persistence operations for gallery metadata.
type MediaRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) error
	GetByID(ctx context.Context, id string) (*models.MediaAsset, error)
	List(ctx context.Context, q MediaQuery) ([]models.MediaAsset, int64, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.MediaAsset, error)
	Delete(ctx context.Context, id string) error
}
