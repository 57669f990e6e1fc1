package catalog

import (
	"context"

	bookingRepo "bookmyservice/database/repository/booking"
	serviceRepo "bookmyservice/database/repository/service"
	windowRepo "bookmyservice/database/repository/window"
	"bookmyservice/models"
)

// ServiceInput is the caller-supplied shape of a service on creation and
// edit. BookingTimes carries the availability windows published with the
// service.
type ServiceInput struct {
	Category     string               `json:"category" binding:"required"`
	Title        string               `json:"title" binding:"required"`
	Description  string               `json:"description" binding:"required"`
	Price        float64              `json:"price" binding:"required"`
	BookingTimes []models.WindowInput `json:"booking_times" binding:"required,min=1"`
	// ProviderID lets an admin create a service on a provider's behalf;
	// ignored for provider callers.
	ProviderID string `json:"provider_id"`
}

// CatalogService manages services and their availability windows.
type CatalogService interface {
	// Create publishes a service with its availability windows.
	Create(ctx context.Context, caller models.Identity, in ServiceInput) (*models.ServiceWithWindows, error)
	// Edit updates a service; windows are updated in place, with extra
	// entries appended as new windows.
	Edit(ctx context.Context, caller models.Identity, serviceID string, in ServiceInput) (*models.ServiceWithWindows, error)
	// Delete removes a service and cascades to its windows and bookings.
	Delete(ctx context.Context, caller models.Identity, serviceID string) error
	// Get retrieves one service with its windows.
	Get(ctx context.Context, serviceID string) (*models.ServiceWithWindows, error)
	// List retrieves services matching the filter, each with windows.
	List(ctx context.Context, filter serviceRepo.Filter) ([]models.ServiceWithWindows, error)
}

// DefaultCatalogService is the production catalog service.
type DefaultCatalogService struct {
	Services serviceRepo.ServiceRepository
	Windows  windowRepo.WindowRepository
	Bookings bookingRepo.BookingRepository
}
