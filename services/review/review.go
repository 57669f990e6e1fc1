package review

import (
	"context"
	"fmt"
	"time"

	reviewRepo "bookmyservice/database/repository/review"
	"bookmyservice/models"
	"bookmyservice/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService manages consumer reviews of services.
type ReviewService interface {
	// Create records a review; consumers review as themselves, admins may
	// record on a consumer's behalf.
	Create(ctx context.Context, caller models.Identity, in models.ReviewInput) (*models.Review, error)
	// Edit updates an existing review of the calling consumer.
	Edit(ctx context.Context, caller models.Identity, reviewID string, in models.ReviewInput) (*models.Review, error)
	// Delete removes a review; author or admin only.
	Delete(ctx context.Context, caller models.Identity, reviewID string) error
	// Get retrieves one review by ID.
	Get(ctx context.Context, reviewID string) (*models.Review, error)
	// ListByMinRating retrieves reviews with rating at or above the floor.
	ListByMinRating(ctx context.Context, minRating float64) ([]models.Review, error)
}

// DefaultReviewService is the production review service.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

func (s *DefaultReviewService) Create(ctx context.Context, caller models.Identity, in models.ReviewInput) (*models.Review, error) {
	if caller.Role != models.RoleConsumer && !caller.IsAdmin() {
		return nil, fmt.Errorf("Forbidden: Only consumers can leave reviews")
	}
	consumerID := in.ConsumerID
	if !caller.IsAdmin() {
		consumerID = caller.ID
	}

	visible := false
	if in.VisibleToAdmin != nil {
		visible = *in.VisibleToAdmin
	}

	now := time.Now()
	rev := &models.Review{
		ID:             uuid.New().String(),
		ConsumerID:     consumerID,
		ProviderID:     in.ProviderID,
		ServiceID:      in.ServiceID,
		Rating:         in.Rating,
		ReviewText:     in.ReviewText,
		VisibleToAdmin: visible,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(rev); err != nil {
		utils.GetLogger().Error("Create: failed to create review", zap.Error(err))
		return nil, fmt.Errorf("failed to create review")
	}
	return rev, nil
}

func (s *DefaultReviewService) Edit(ctx context.Context, caller models.Identity, reviewID string, in models.ReviewInput) (*models.Review, error) {
	rev, err := s.Repo.GetByID(reviewID)
	if err != nil {
		utils.GetLogger().Error("Edit: failed to fetch review", zap.Error(err))
		return nil, fmt.Errorf("failed to update review")
	}
	if rev == nil {
		return nil, fmt.Errorf("Review not found")
	}
	if !caller.IsAdmin() && caller.ID != rev.ConsumerID {
		return nil, fmt.Errorf("Forbidden: You do not have permission to edit this review")
	}

	rev.Rating = in.Rating
	rev.ReviewText = in.ReviewText
	if in.VisibleToAdmin != nil {
		rev.VisibleToAdmin = *in.VisibleToAdmin
	}
	rev.UpdatedAt = time.Now()
	if err := s.Repo.Update(rev); err != nil {
		utils.GetLogger().Error("Edit: failed to update review",
			zap.String("reviewID", reviewID), zap.Error(err))
		return nil, fmt.Errorf("failed to update review")
	}
	return rev, nil
}

func (s *DefaultReviewService) Delete(ctx context.Context, caller models.Identity, reviewID string) error {
	rev, err := s.Repo.GetByID(reviewID)
	if err != nil {
		utils.GetLogger().Error("Delete: failed to fetch review", zap.Error(err))
		return fmt.Errorf("failed to delete review")
	}
	if rev == nil {
		return fmt.Errorf("Review not found")
	}
	if !caller.IsAdmin() && caller.ID != rev.ConsumerID {
		return fmt.Errorf("Forbidden: You do not have permission to delete this review")
	}
	if err := s.Repo.Delete(reviewID); err != nil {
		utils.GetLogger().Error("Delete: failed to delete review",
			zap.String("reviewID", reviewID), zap.Error(err))
		return fmt.Errorf("failed to delete review")
	}
	return nil
}

func (s *DefaultReviewService) Get(ctx context.Context, reviewID string) (*models.Review, error) {
	rev, err := s.Repo.GetByID(reviewID)
	if err != nil {
		utils.GetLogger().Error("Get: failed to fetch review", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch review")
	}
	if rev == nil {
		return nil, fmt.Errorf("Review not found")
	}
	return rev, nil
}

func (s *DefaultReviewService) ListByMinRating(ctx context.Context, minRating float64) ([]models.Review, error) {
	reviews, err := s.Repo.ListByMinRating(minRating)
	if err != nil {
		utils.GetLogger().Error("ListByMinRating: failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch reviews")
	}
	return reviews, nil
}
