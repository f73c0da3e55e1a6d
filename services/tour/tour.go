package tour

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	tourRepo "tourbase/database/repository/tour"
	"tourbase/models"
	"tourbase/services/pricing"
	"tourbase/utils"
)

const (
	tourCacheKeyPrefix = "tour:"
	tourCacheTTL       = 5 * time.Minute
)

func (s *DefaultTourService) CreateTour(ctx context.Context, t *models.Tour) (*models.Tour, error) {
	if t.Title == "" {
		return nil, fmt.Errorf("tour title is required")
	}
	if t.Price < 0 {
		return nil, fmt.Errorf("tour price cannot be negative")
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		utils.GetLogger().Error("CreateTour: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}
	return t, nil
}

// GetTour reads through the Redis cache.
func (s *DefaultTourService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, tourCacheKeyPrefix+id).Result(); err == nil {
			var cached models.Tour
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tour not found: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(t); err == nil {
			if err := s.Cache.Set(ctx, tourCacheKeyPrefix+id, data, tourCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("GetTour: cache write failed", zap.Error(err))
			}
		}
	}
	return t, nil
}

func (s *DefaultTourService) ListTours(ctx context.Context, q tourRepo.TourQuery) ([]models.Tour, int64, error) {
	tours, total, err := s.Repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tours: %w", err)
	}
	return tours, total, nil
}

func (s *DefaultTourService) UpdateTour(ctx context.Context, id string, updates map[string]interface{}) (*models.Tour, error) {
	updated, err := s.Repo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}
	s.invalidate(ctx, id)
	return updated, nil
}

func (s *DefaultTourService) DeleteTour(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *DefaultTourService) invalidate(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, tourCacheKeyPrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("tour cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
}

// TourCardPrice computes the headline badge price for a tour card: the first
// selected pricing option of the schedule, or the sale/base price.
func (s *DefaultTourService) TourCardPrice(ctx context.Context, tourID string) (*models.PriceResult, error) {
	t, err := s.GetTour(ctx, tourID)
	if err != nil {
		return nil, err
	}
	dep := models.Departure{SelectedPricingOptions: t.Dates.SelectedPricingOptions}
	res := pricing.CalculateDeparturePrice(dep, t.Price, t.SalePrice, t.SaleEnabled, t.PricingOptions, t.PricingGroups, s.now())
	return &res, nil
}
