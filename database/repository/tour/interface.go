package tourRepo

import (
	"context"

	"tourbase/models"
)

// TourQuery describes the storefront listing filters.
type TourQuery struct {
	Destination   string
	Category      string
	PublishedOnly bool
	Page          int
	PerPage       int
}

// TourRepository defines persistence operations for tours.
type TourRepository interface {
	Create(ctx context.Context, tour *models.Tour) error
	GetByID(ctx context.Context, id string) (*models.Tour, error)
	List(ctx context.Context, q TourQuery) ([]models.Tour, int64, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Tour, error)
	Delete(ctx context.Context, id string) error
	UpdateReviewStats(ctx context.Context, id string, avg float64, count int) error
}
