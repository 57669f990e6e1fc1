package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingRepo "bookmyservice/database/repository/booking"
	serviceRepo "bookmyservice/database/repository/service"
	"bookmyservice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeWindowRepo struct {
	windows map[string]models.AvailabilityWindow
}

func (f *fakeWindowRepo) GetByID(id string) (*models.AvailabilityWindow, error) {
	w, ok := f.windows[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}
func (f *fakeWindowRepo) ListByService(serviceID string) ([]models.AvailabilityWindow, error) {
	return nil, nil
}
func (f *fakeWindowRepo) Create(w *models.AvailabilityWindow) error { return nil }
func (f *fakeWindowRepo) Update(w *models.AvailabilityWindow) error { return nil }
func (f *fakeWindowRepo) Delete(id string) error                    { return nil }
func (f *fakeWindowRepo) DeleteByService(serviceID string) error    { return nil }

// fakeBookingRepo mirrors the unique slot index of the real collection.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func slotKey(b *models.Booking) string {
	return b.WindowID + "|" + b.BookedDate + "|" + b.BookedTime
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			rec := b
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListByWindow(windowID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.WindowID == windowID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByConsumer(consumerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ConsumerID == consumerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll() ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Booking(nil), f.bookings...), nil
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if slotKey(&existing) == slotKey(b) {
			return bookingRepo.ErrDuplicateSlot
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) Rebind(id string, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if existing.ID != id && slotKey(&existing) == slotKey(b) {
			return bookingRepo.ErrDuplicateSlot
		}
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i] = *b
			return nil
		}
	}
	return errors.New("booking not found")
}

func (f *fakeBookingRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("booking not found")
}

func (f *fakeBookingRepo) DeleteByService(serviceID string) error { return nil }

type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error)            { return nil, nil }
func (f *fakeUserRepo) GetByUsernameOrEmail(u string) (*models.User, error)      { return nil, nil }
func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error)      { return nil, nil }
func (f *fakeUserRepo) FindDuplicate(u, e, p string) (*models.User, error)       { return nil, nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error)                           { return nil, nil }
func (f *fakeUserRepo) Create(user *models.User) error                           { return nil }
func (f *fakeUserRepo) Update(user *models.User) error                           { return nil }
func (f *fakeUserRepo) UpdateFields(id string, fields bson.M) error { return nil }
func (f *fakeUserRepo) Delete(id string) error { return nil }

type fakeServiceRepo struct {
	services map[string]models.Service
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}
func (f *fakeServiceRepo) List(filter serviceRepo.Filter) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) Create(svc *models.Service) error                  { return nil }
func (f *fakeServiceRepo) Update(svc *models.Service) error                  { return nil }
func (f *fakeServiceRepo) Delete(id string) error                            { return nil }

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []string
	fails bool
}

func (f *fakeNotifier) Notify(ctx context.Context, kind, recipient string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fails {
		return errors.New("queue unavailable")
	}
	f.sent = append(f.sent, kind+":"+recipient)
	return nil
}

func newTestEngine() (*DefaultBookingEngine, *fakeBookingRepo, *fakeNotifier) {
	windows := &fakeWindowRepo{windows: map[string]models.AvailabilityWindow{
		"win-1": {
			ID:         "win-1",
			ServiceID:  "svc-1",
			ProviderID: "prov-1",
			StartDate:  "2024/06/01",
			EndDate:    "2024/06/30",
			StartTime:  "09:00:00",
			EndTime:    "17:00:00",
		},
		"win-2": {
			ID:         "win-2",
			ServiceID:  "svc-1",
			ProviderID: "prov-1",
			StartDate:  "2024/06/01",
			EndDate:    "2024/06/30",
			StartTime:  "09:00:00",
			EndTime:    "17:00:00",
		},
	}}
	bookings := &fakeBookingRepo{}
	users := &fakeUserRepo{users: map[string]models.User{
		"prov-1": {ID: "prov-1", Username: "provider1", Email: "provider@example.com", PhoneNumber: "111"},
		"cons-1": {ID: "cons-1", Username: "consumer1", Email: "consumer@example.com", PhoneNumber: "222"},
	}}
	services := &fakeServiceRepo{services: map[string]models.Service{
		"svc-1": {ID: "svc-1", ProviderID: "prov-1", Title: "Haircut", Description: "A haircut"},
	}}
	notifier := &fakeNotifier{}
	engine := &DefaultBookingEngine{
		Windows:  windows,
		Bookings: bookings,
		Users:    users,
		Services: services,
		Notifier: notifier,
	}
	return engine, bookings, notifier
}

var consumer = models.Identity{ID: "cons-1", Role: models.RoleConsumer, Email: "consumer@example.com", Name: "consumer1"}

func TestCreateBooking(t *testing.T) {
	engine, bookings, notifier := newTestEngine()

	created, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "win-1", created.WindowID)
	assert.Equal(t, "svc-1", created.ServiceID)
	assert.Equal(t, "cons-1", created.ConsumerID)
	assert.Equal(t, "prov-1", created.ProviderID)

	stored, err := bookings.ListAll()
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	// Both parties got mail.
	assert.Contains(t, notifier.sent, models.EmailBookingConfirmation+":consumer@example.com")
	assert.Contains(t, notifier.sent, models.EmailNewBooking+":provider@example.com")
}

func TestCreateBookingRejectsNonConsumers(t *testing.T) {
	engine, bookings, _ := newTestEngine()

	for _, role := range []string{models.RoleAdmin, models.RoleProvider} {
		caller := models.Identity{ID: "someone", Role: role}
		_, err := engine.Create(context.Background(), caller, models.BookingRequest{
			WindowID:   "win-1",
			BookedDate: "2024/06/15",
			BookedTime: "10:00:00",
		})
		assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
	}

	stored, _ := bookings.ListAll()
	assert.Empty(t, stored)
}

func TestCreateBookingUnknownWindow(t *testing.T) {
	engine, bookings, _ := newTestEngine()

	_, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "missing",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	stored, _ := bookings.ListAll()
	assert.Empty(t, stored, "no booking may be written for an unknown window")
}

func TestCreateBookingMissingService(t *testing.T) {
	engine, bookings, _ := newTestEngine()

	// The window survives but its owning service is gone.
	delete(engine.Services.(*fakeServiceRepo).services, "svc-1")

	_, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	stored, _ := bookings.ListAll()
	assert.Empty(t, stored, "no booking may be written against a missing service")
}

func TestCreateBookingDateChecks(t *testing.T) {
	engine, _, _ := newTestEngine()

	cases := []struct {
		name string
		date string
	}{
		{"malformed date", "2024-06-15"},
		{"before window", "2024/05/31"},
		{"after window", "2024/07/01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Create(context.Background(), consumer, models.BookingRequest{
				WindowID:   "win-1",
				BookedDate: tc.date,
				BookedTime: "10:00:00",
			})
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}

	// Boundary dates are accepted.
	_, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID: "win-1", BookedDate: "2024/06/01", BookedTime: "10:00:00",
	})
	assert.NoError(t, err)
	_, err = engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID: "win-1", BookedDate: "2024/06/30", BookedTime: "10:00:00",
	})
	assert.NoError(t, err)
}

func TestCreateBookingTimeChecks(t *testing.T) {
	engine, _, _ := newTestEngine()

	cases := []struct {
		name string
		time string
	}{
		{"malformed time", "10:00"},
		{"before window", "08:59:59"},
		{"after window", "17:00:01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Create(context.Background(), consumer, models.BookingRequest{
				WindowID:   "win-1",
				BookedDate: "2024/06/15",
				BookedTime: tc.time,
			})
			assert.ErrorIs(t, err, ErrInvalidTime)
		})
	}

	// Boundary times are accepted.
	_, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID: "win-1", BookedDate: "2024/06/15", BookedTime: "09:00:00",
	})
	assert.NoError(t, err)
	_, err = engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID: "win-1", BookedDate: "2024/06/16", BookedTime: "17:00:00",
	})
	assert.NoError(t, err)
}

func TestCreateBookingSlotTaken(t *testing.T) {
	engine, _, _ := newTestEngine()

	req := models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	}
	_, err := engine.Create(context.Background(), consumer, req)
	require.NoError(t, err)

	other := models.Identity{ID: "cons-2", Role: models.RoleConsumer}
	_, err = engine.Create(context.Background(), other, req)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Same window, different time is fine.
	_, err = engine.Create(context.Background(), other, models.BookingRequest{
		WindowID: "win-1", BookedDate: "2024/06/15", BookedTime: "11:00:00",
	})
	assert.NoError(t, err)
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	engine, bookings, _ := newTestEngine()

	const attempts = 16
	req := models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	}

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Create(context.Background(), consumer, req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, taken int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotTaken):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one attempt may win the slot")
	assert.Equal(t, attempts-1, taken)

	stored, _ := bookings.ListAll()
	assert.Len(t, stored, 1)
}

func TestEditBooking(t *testing.T) {
	engine, _, _ := newTestEngine()

	created, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err)

	updated, err := engine.Edit(context.Background(), consumer, created.ID, "win-2")
	require.NoError(t, err)
	assert.Equal(t, "win-2", updated.WindowID)
	assert.Equal(t, "2024/06/15", updated.BookedDate, "date carries over on rebind")
	assert.Equal(t, "10:00:00", updated.BookedTime, "time carries over on rebind")
}

func TestEditBookingNotFound(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.Edit(context.Background(), consumer, "missing", "win-2")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestEditBookingUnknownWindow(t *testing.T) {
	engine, _, _ := newTestEngine()

	created, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err)

	_, err = engine.Edit(context.Background(), consumer, created.ID, "missing")
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestEditBookingMissingService(t *testing.T) {
	engine, _, _ := newTestEngine()

	created, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err)

	delete(engine.Services.(*fakeServiceRepo).services, "svc-1")
	_, err = engine.Edit(context.Background(), consumer, created.ID, "win-2")
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestEditBookingSlotConflict(t *testing.T) {
	engine, _, _ := newTestEngine()

	// Someone else already holds the same slot in win-2.
	other := models.Identity{ID: "cons-2", Role: models.RoleConsumer}
	_, err := engine.Create(context.Background(), other, models.BookingRequest{
		WindowID:   "win-2",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err)

	created, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err)

	_, err = engine.Edit(context.Background(), consumer, created.ID, "win-2")
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestEditBookingRebindToSameWindow(t *testing.T) {
	engine, _, _ := newTestEngine()

	created, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err)

	// The booking's own slot never conflicts with itself.
	updated, err := engine.Edit(context.Background(), consumer, created.ID, "win-1")
	require.NoError(t, err)
	assert.Equal(t, "win-1", updated.WindowID)
}

func TestDeleteBooking(t *testing.T) {
	engine, bookings, _ := newTestEngine()

	created, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err)

	require.NoError(t, engine.Delete(context.Background(), consumer, created.ID))
	stored, _ := bookings.ListAll()
	assert.Empty(t, stored)

	err = engine.Delete(context.Background(), consumer, created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListForConsumer(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID: "win-1", BookedDate: "2024/06/15", BookedTime: "10:00:00",
	})
	require.NoError(t, err)
	other := models.Identity{ID: "cons-2", Role: models.RoleConsumer}
	_, err = engine.Create(context.Background(), other, models.BookingRequest{
		WindowID: "win-1", BookedDate: "2024/06/15", BookedTime: "11:00:00",
	})
	require.NoError(t, err)

	mine, err := engine.ListForConsumer(context.Background(), "cons-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "cons-1", mine[0].ConsumerID)

	all, err := engine.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateBookingSurvivesNotifierFailure(t *testing.T) {
	engine, bookings, notifier := newTestEngine()
	notifier.fails = true

	created, err := engine.Create(context.Background(), consumer, models.BookingRequest{
		WindowID:   "win-1",
		BookedDate: "2024/06/15",
		BookedTime: "10:00:00",
	})
	require.NoError(t, err, "a booked slot is never rolled back over email")
	assert.NotNil(t, created)

	stored, _ := bookings.ListAll()
	assert.Len(t, stored, 1)
}
