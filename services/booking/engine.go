package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingRepo "bookmyservice/database/repository/booking"
	serviceRepo "bookmyservice/database/repository/service"
	userRepo "bookmyservice/database/repository/user"
	windowRepo "bookmyservice/database/repository/window"
	"bookmyservice/models"
	"bookmyservice/services/notification"
	"bookmyservice/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingEngine decides whether a proposed booking is accepted against a
// service's published availability window and the bookings already placed
// in it.
type BookingEngine interface {
	// Create validates and materializes a booking for the caller.
	Create(ctx context.Context, caller models.Identity, req models.BookingRequest) (*models.Booking, error)
	// Edit rebinds an existing booking to a different window, re-running
	// the same range and slot checks against the new window.
	Edit(ctx context.Context, caller models.Identity, bookingID, newWindowID string) (*models.Booking, error)
	// Delete removes a booking by ID.
	Delete(ctx context.Context, caller models.Identity, bookingID string) error
	// ListForConsumer returns all bookings made by the given consumer.
	ListForConsumer(ctx context.Context, consumerID string) ([]models.Booking, error)
	// ListAll returns every booking.
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// DefaultBookingEngine is the production booking engine.
type DefaultBookingEngine struct {
	Windows  windowRepo.WindowRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Services serviceRepo.ServiceRepository
	Notifier notification.NotificationService

	// locks serializes the availability scan and insert per window. The
	// storage layer also enforces slot uniqueness with an index, so the
	// mutex is about returning the friendlier SlotTaken message rather
	// than correctness.
	locks sync.Map // windowID -> *sync.Mutex
}

func (e *DefaultBookingEngine) windowLock(windowID string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(windowID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// resolveWindow fetches the window and its owning service. A missing
// window, or a window whose service no longer exists, maps to
// ErrInvalidWindow before any date or time check runs.
func (e *DefaultBookingEngine) resolveWindow(windowID string) (*models.AvailabilityWindow, *models.Service, error) {
	window, err := e.Windows.GetByID(windowID)
	if err != nil {
		return nil, nil, storeError(err)
	}
	if window == nil {
		return nil, nil, ErrInvalidWindow
	}
	svc, err := e.Services.GetByID(window.ServiceID)
	if err != nil {
		return nil, nil, storeError(err)
	}
	if svc == nil {
		return nil, nil, ErrInvalidWindow
	}
	return window, svc, nil
}

// checkSlot validates the proposed date and time against the window's
// ranges. Format checks run before range checks; both use the fixed-width
// string representation throughout.
func checkSlot(window *models.AvailabilityWindow, bookedDate, bookedTime string) error {
	if !IsValidDateFormat(bookedDate) ||
		!IsDateWithinRange(bookedDate, window.StartDate, window.EndDate) {
		return ErrInvalidDate
	}
	if !IsValidTimeFormat(bookedTime) ||
		!IsTimeWithinRange(bookedTime, window.StartTime, window.EndTime) {
		return ErrInvalidTime
	}
	return nil
}

// slotOccupied scans the window's existing bookings for the proposed
// (date, time) pair, ignoring the booking identified by excludeID.
func (e *DefaultBookingEngine) slotOccupied(windowID, bookedDate, bookedTime, excludeID string) (bool, error) {
	existing, err := e.Bookings.ListByWindow(windowID)
	if err != nil {
		return false, storeError(err)
	}
	for _, b := range existing {
		if b.ID == excludeID {
			continue
		}
		if b.BookedDate == bookedDate && b.BookedTime == bookedTime {
			return true, nil
		}
	}
	return false, nil
}

// Create validates and materializes a booking for the caller.
//
// Check order is fixed: role, window and service resolution, date, time,
// slot occupancy, insert. The insert relies on the unique slot index to close
// the scan-then-insert race: a concurrent winner turns the loser's insert
// into ErrSlotTaken.
func (e *DefaultBookingEngine) Create(ctx context.Context, caller models.Identity, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if caller.Role != models.RoleConsumer {
		return nil, ErrForbidden
	}

	window, svc, err := e.resolveWindow(req.WindowID)
	if err != nil {
		return nil, err
	}

	if err := checkSlot(window, req.BookedDate, req.BookedTime); err != nil {
		return nil, err
	}

	mu := e.windowLock(window.ID)
	mu.Lock()
	defer mu.Unlock()

	taken, err := e.slotOccupied(window.ID, req.BookedDate, req.BookedTime, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	created := &models.Booking{
		ID:         uuid.New().String(),
		WindowID:   window.ID,
		ServiceID:  window.ServiceID,
		ConsumerID: caller.ID,
		ProviderID: window.ProviderID,
		BookedDate: req.BookedDate,
		BookedTime: req.BookedTime,
	}
	if err := e.Bookings.Create(created); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, storeError(err)
	}

	e.sendBookingEmails(ctx, caller, svc, created)

	logger.Info("booking created",
		zap.String("bookingID", created.ID),
		zap.String("windowID", created.WindowID),
		zap.String("consumerID", created.ConsumerID))
	return created, nil
}

// sendBookingEmails notifies the consumer and the provider. Failures are
// logged and swallowed; a booked slot is never rolled back over email.
func (e *DefaultBookingEngine) sendBookingEmails(ctx context.Context, caller models.Identity, svc *models.Service, b *models.Booking) {
	logger := utils.GetLogger()

	data := map[string]string{
		"consumer_name":       caller.Name,
		"booked_date":         b.BookedDate,
		"booked_time":         b.BookedTime,
		"service_title":       svc.Title,
		"service_description": svc.Description,
	}
	if consumer, err := e.Users.GetByID(caller.ID); err == nil && consumer != nil {
		data["consumer_phone"] = consumer.PhoneNumber
	}

	provider, err := e.Users.GetByID(b.ProviderID)
	if err != nil || provider == nil {
		logger.Warn("failed to resolve provider for booking email",
			zap.String("bookingID", b.ID), zap.Error(err))
	} else {
		data["provider_name"] = provider.Username
		data["provider_phone"] = provider.PhoneNumber
	}

	if caller.Email != "" {
		if err := e.Notifier.Notify(ctx, models.EmailBookingConfirmation, caller.Email, data); err != nil {
			logger.Warn("failed to queue booking confirmation email",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	if provider != nil && provider.Email != "" {
		if err := e.Notifier.Notify(ctx, models.EmailNewBooking, provider.Email, data); err != nil {
			logger.Warn("failed to queue new booking email",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
}

// Edit rebinds an existing booking to a different window. The booking's
// date and time are re-validated against the new window's ranges and the
// new window's occupancy is checked at slot granularity, mirroring Create.
func (e *DefaultBookingEngine) Edit(ctx context.Context, caller models.Identity, bookingID, newWindowID string) (*models.Booking, error) {
	existing, err := e.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, storeError(err)
	}
	if existing == nil {
		return nil, ErrBookingNotFound
	}

	window, _, err := e.resolveWindow(newWindowID)
	if err != nil {
		return nil, err
	}

	if err := checkSlot(window, existing.BookedDate, existing.BookedTime); err != nil {
		return nil, err
	}

	mu := e.windowLock(window.ID)
	mu.Lock()
	defer mu.Unlock()

	taken, err := e.slotOccupied(window.ID, existing.BookedDate, existing.BookedTime, existing.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	existing.WindowID = window.ID
	existing.ServiceID = window.ServiceID
	existing.ProviderID = window.ProviderID
	existing.UpdatedAt = time.Now()
	if err := e.Bookings.Rebind(existing.ID, existing); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, storeError(err)
	}
	return existing, nil
}

// Delete removes a booking by ID. Authorization beyond authentication is
// the route layer's concern; the window is never mutated.
func (e *DefaultBookingEngine) Delete(ctx context.Context, caller models.Identity, bookingID string) error {
	existing, err := e.Bookings.GetByID(bookingID)
	if err != nil {
		return storeError(err)
	}
	if existing == nil {
		return ErrBookingNotFound
	}
	if err := e.Bookings.Delete(bookingID); err != nil {
		return storeError(err)
	}
	return nil
}

// ListForConsumer returns all bookings made by the given consumer.
func (e *DefaultBookingEngine) ListForConsumer(ctx context.Context, consumerID string) ([]models.Booking, error) {
	bookings, err := e.Bookings.ListByConsumer(consumerID)
	if err != nil {
		return nil, storeError(err)
	}
	return bookings, nil
}

// ListAll returns every booking.
func (e *DefaultBookingEngine) ListAll(ctx context.Context) ([]models.Booking, error) {
	bookings, err := e.Bookings.ListAll()
	if err != nil {
		return nil, storeError(err)
	}
	return bookings, nil
}
