package windowRepo

import "bookmyservice/models"

// WindowRepository defines methods for availability-window data access.
type WindowRepository interface {
	// GetByID retrieves a window by its unique ID, or nil when absent.
	GetByID(id string) (*models.AvailabilityWindow, error)
	// ListByService retrieves all windows owned by a service.
	ListByService(serviceID string) ([]models.AvailabilityWindow, error)
	// Create inserts a new window record.
	Create(w *models.AvailabilityWindow) error
	// Update modifies an existing window record in place.
	Update(w *models.AvailabilityWindow) error
	// Delete removes a window record by its ID.
	Delete(id string) error
	// DeleteByService removes all windows owned by a service.
	DeleteByService(serviceID string) error
}
