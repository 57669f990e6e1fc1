package subscriptionRepo

import "bookmyservice/models"

// SubscriptionRepository defines methods for subscription data access.
type SubscriptionRepository interface {
	// GetByID retrieves a subscription by its unique ID, or nil when absent.
	GetByID(id string) (*models.Subscription, error)
	// ListByProvider retrieves all subscriptions of a provider.
	ListByProvider(providerID string) ([]models.Subscription, error)
	// Create inserts a new subscription record.
	Create(sub *models.Subscription) error
	// Update modifies an existing subscription record.
	Update(sub *models.Subscription) error
	// Delete removes a subscription record by its ID.
	Delete(id string) error
}
