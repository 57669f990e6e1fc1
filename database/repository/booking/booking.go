package bookingRepo

import (
	"errors"

	"bookmyservice/models"
)

// ErrDuplicateSlot is returned by Create and Rebind when another booking
// already holds the same (window_id, booked_date, booked_time) triple.
// The bookings collection enforces the triple with a unique index, so the
// invariant holds even when two requests race past the application-level
// availability scan.
var ErrDuplicateSlot = errors.New("booking slot already taken")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID, or nil when absent.
	GetByID(id string) (*models.Booking, error)
	// ListByWindow retrieves all bookings placed against a window.
	ListByWindow(windowID string) ([]models.Booking, error)
	// ListByConsumer retrieves all bookings made by a consumer.
	ListByConsumer(consumerID string) ([]models.Booking, error)
	// ListAll retrieves every booking.
	ListAll() ([]models.Booking, error)
	// Create inserts a new booking record. Returns ErrDuplicateSlot when
	// the slot is already taken.
	Create(b *models.Booking) error
	// Rebind moves an existing booking onto a different window and slot.
	// Returns ErrDuplicateSlot when the target slot is already taken.
	Rebind(id string, b *models.Booking) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
	// DeleteByService removes all bookings referencing a service.
	DeleteByService(serviceID string) error
}
