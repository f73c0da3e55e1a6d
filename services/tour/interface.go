package tour

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	tourRepo "tourbase/database/repository/tour"
	"tourbase/models"
)

// DepartureQuery filters and pages the expanded departure list.
type DepartureQuery struct {
	Month   string // "YYYY-MM"; empty means all months
	Page    int
	PerPage int
}

// DeparturePage is one page of priced departures.
type DeparturePage struct {
	Items   []models.DepartureView `json:"items"`
	Total   int                    `json:"total"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"perPage"`
}

// TourService defines tour catalogue operations for the storefront and the
// admin dashboard.
type TourService interface {
	CreateTour(ctx context.Context, t *models.Tour) (*models.Tour, error)
	GetTour(ctx context.Context, id string) (*models.Tour, error)
	ListTours(ctx context.Context, q tourRepo.TourQuery) ([]models.Tour, int64, error)
	UpdateTour(ctx context.Context, id string, updates map[string]interface{}) (*models.Tour, error)
	DeleteTour(ctx context.Context, id string) error

	// ListDepartures expands the tour's schedule and prices every instance.
	ListDepartures(ctx context.Context, tourID string, q DepartureQuery) (*DeparturePage, error)
	// TourCardPrice computes the headline price badge for a tour listing card.
	TourCardPrice(ctx context.Context, tourID string) (*models.PriceResult, error)
}

// DefaultTourService implements TourService with Mongo persistence and a
// Redis read-through cache for tour records.
type DefaultTourService struct {
	Repo  tourRepo.TourRepository
	Cache *redis.Client
	Now   func() time.Time // injectable clock for discount-window checks
}

func (s *DefaultTourService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
