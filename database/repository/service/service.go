package serviceRepo

import "bookmyservice/models"

// Filter narrows catalog listings. Zero values mean "no constraint".
type Filter struct {
	Category   string
	Title      string
	ProviderID string
	MinPrice   *float64
	MaxPrice   *float64
}

// ServiceRepository defines methods for catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// List retrieves services matching the filter.
	List(filter Filter) ([]models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
	// Update modifies an existing service record.
	Update(svc *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
