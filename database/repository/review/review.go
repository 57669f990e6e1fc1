package reviewRepo

import "bookmyservice/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetByID retrieves a review by its unique ID, or nil when absent.
	GetByID(id string) (*models.Review, error)
	// ListByMinRating retrieves reviews with rating >= minRating.
	ListByMinRating(minRating float64) ([]models.Review, error)
	// Create inserts a new review record.
	Create(rev *models.Review) error
	// Update modifies an existing review record.
	Update(rev *models.Review) error
	// Delete removes a review record by its ID.
	Delete(id string) error
}
