package review

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	reviewRepo "tourbase/database/repository/review"
	tourRepo "tourbase/database/repository/tour"
	"tourbase/models"
	"tourbase/utils"
)

// ReviewService manages customer reviews and their moderation.
type ReviewService interface {
	Submit(ctx context.Context, r *models.Review) (*models.Review, error)
	ListApproved(ctx context.Context, tourID string) ([]models.Review, error)
	ListForModeration(ctx context.Context, tourID string) ([]models.Review, error)
	Moderate(ctx context.Context, reviewID, status string) (*models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo  reviewRepo.ReviewRepository
	Tours tourRepo.TourRepository
}

func (s *DefaultReviewService) Submit(ctx context.Context, r *models.Review) (*models.Review, error) {
	if r.TourID == "" || r.UserID == "" {
		return nil, fmt.Errorf("tour and user are required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if _, err := s.Tours.GetByID(ctx, r.TourID); err != nil {
		return nil, fmt.Errorf("tour not found: %w", err)
	}

	r.Status = models.ReviewStatusPending
	if err := s.Repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return r, nil
}

func (s *DefaultReviewService) ListApproved(ctx context.Context, tourID string) ([]models.Review, error) {
	return s.Repo.ListByTour(ctx, tourID, models.ReviewStatusApproved)
}

func (s *DefaultReviewService) ListForModeration(ctx context.Context, tourID string) ([]models.Review, error) {
	return s.Repo.ListByTour(ctx, tourID, "")
}

// Moderate approves or rejects a review, then refreshes the tour's
// denormalized rating stats.
func (s *DefaultReviewService) Moderate(ctx context.Context, reviewID, status string) (*models.Review, error) {
	if status != models.ReviewStatusApproved && status != models.ReviewStatusRejected {
		return nil, fmt.Errorf("invalid moderation status %q", status)
	}
	updated, err := s.Repo.UpdateStatus(ctx, reviewID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	avg, count, err := s.Repo.ApprovedStats(ctx, updated.TourID)
	if err != nil {
		utils.GetLogger().Warn("review stats aggregation failed", zap.String("tourId", updated.TourID), zap.Error(err))
		return updated, nil
	}
	if err := s.Tours.UpdateReviewStats(ctx, updated.TourID, avg, count); err != nil {
		utils.GetLogger().Warn("review stats write failed", zap.String("tourId", updated.TourID), zap.Error(err))
	}
	return updated, nil
}
