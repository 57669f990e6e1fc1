package catalog

import (
	"context"
	"errors"
	"testing"

	serviceRepo "bookmyservice/database/repository/service"
	"bookmyservice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceStore struct {
	services map[string]models.Service
}

func (f *fakeServiceStore) GetByID(id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeServiceStore) List(filter serviceRepo.Filter) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.ProviderID != "" && s.ProviderID != filter.ProviderID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceStore) Create(svc *models.Service) error {
	f.services[svc.ID] = *svc
	return nil
}

func (f *fakeServiceStore) Update(svc *models.Service) error {
	if _, ok := f.services[svc.ID]; !ok {
		return errors.New("service not found")
	}
	f.services[svc.ID] = *svc
	return nil
}

func (f *fakeServiceStore) Delete(id string) error {
	if _, ok := f.services[id]; !ok {
		return errors.New("service not found")
	}
	delete(f.services, id)
	return nil
}

type fakeWindowStore struct {
	windows map[string]models.AvailabilityWindow
	order   []string
}

func (f *fakeWindowStore) GetByID(id string) (*models.AvailabilityWindow, error) {
	w, ok := f.windows[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (f *fakeWindowStore) ListByService(serviceID string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, id := range f.order {
		if w, ok := f.windows[id]; ok && w.ServiceID == serviceID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWindowStore) Create(w *models.AvailabilityWindow) error {
	f.windows[w.ID] = *w
	f.order = append(f.order, w.ID)
	return nil
}

func (f *fakeWindowStore) Update(w *models.AvailabilityWindow) error {
	if _, ok := f.windows[w.ID]; !ok {
		return errors.New("window not found")
	}
	f.windows[w.ID] = *w
	return nil
}

func (f *fakeWindowStore) Delete(id string) error {
	delete(f.windows, id)
	return nil
}

func (f *fakeWindowStore) DeleteByService(serviceID string) error {
	for id, w := range f.windows {
		if w.ServiceID == serviceID {
			delete(f.windows, id)
		}
	}
	return nil
}

type fakeBookingStore struct {
	bookings map[string]models.Booking
}

func (f *fakeBookingStore) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeBookingStore) ListByWindow(windowID string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingStore) ListByConsumer(consumerID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingStore) ListAll() ([]models.Booking, error) { return nil, nil }

func (f *fakeBookingStore) Create(b *models.Booking) error {
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingStore) Rebind(id string, b *models.Booking) error { return nil }

func (f *fakeBookingStore) Delete(id string) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingStore) DeleteByService(serviceID string) error {
	for id, b := range f.bookings {
		if b.ServiceID == serviceID {
			delete(f.bookings, id)
		}
	}
	return nil
}

func newTestCatalog() (*DefaultCatalogService, *fakeServiceStore, *fakeWindowStore) {
	services := &fakeServiceStore{services: map[string]models.Service{}}
	windows := &fakeWindowStore{windows: map[string]models.AvailabilityWindow{}}
	bookings := &fakeBookingStore{bookings: map[string]models.Booking{}}
	return &DefaultCatalogService{Services: services, Windows: windows, Bookings: bookings}, services, windows
}

var (
	provider = models.Identity{ID: "prov-1", Role: models.RoleProvider}
	admin    = models.Identity{ID: "adm-1", Role: models.RoleAdmin}
)

func validInput() ServiceInput {
	return ServiceInput{
		Category:    "Home Services",
		Title:       "Deep cleaning",
		Description: "Full house deep clean",
		Price:       80,
		BookingTimes: []models.WindowInput{{
			StartDate: "2024/06/01",
			EndDate:   "2024/06/30",
			StartTime: "09:00:00",
			EndTime:   "17:00:00",
		}},
	}
}

func TestCreateService(t *testing.T) {
	catalog, _, windows := newTestCatalog()

	created, err := catalog.Create(context.Background(), provider, validInput())
	require.NoError(t, err)
	assert.Equal(t, "prov-1", created.ProviderID)
	assert.Len(t, created.Windows, 1)
	assert.Equal(t, created.ID, created.Windows[0].ServiceID)

	stored, err := windows.ListByService(created.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateServiceRejectsUnknownCategory(t *testing.T) {
	catalog, services, _ := newTestCatalog()

	in := validInput()
	in.Category = "Time Travel"
	_, err := catalog.Create(context.Background(), provider, in)
	assert.EqualError(t, err, "Invalid category")
	assert.Empty(t, services.services)
}

func TestCreateServiceRejectsMalformedWindows(t *testing.T) {
	catalog, services, _ := newTestCatalog()

	cases := []struct {
		name   string
		mutate func(*models.WindowInput)
	}{
		{"bad start date", func(w *models.WindowInput) { w.StartDate = "2024-06-01" }},
		{"bad end date", func(w *models.WindowInput) { w.EndDate = "June 30" }},
		{"bad start time", func(w *models.WindowInput) { w.StartTime = "9:00" }},
		{"bad end time", func(w *models.WindowInput) { w.EndTime = "25:00:00" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in.BookingTimes[0])
			_, err := catalog.Create(context.Background(), provider, in)
			assert.EqualError(t, err, "Invalid booking times")
		})
	}
	assert.Empty(t, services.services)
}

func TestCreateServiceAdminOnBehalf(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	in := validInput()
	in.ProviderID = "prov-9"
	created, err := catalog.Create(context.Background(), admin, in)
	require.NoError(t, err)
	assert.Equal(t, "prov-9", created.ProviderID)
	assert.Equal(t, "prov-9", created.Windows[0].ProviderID)

	// Provider callers cannot assign someone else's ID.
	created, err = catalog.Create(context.Background(), provider, in)
	require.NoError(t, err)
	assert.Equal(t, "prov-1", created.ProviderID)
}

func TestEditService(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	created, err := catalog.Create(context.Background(), provider, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Title = "Deeper cleaning"
	in.BookingTimes[0].EndDate = "2024/07/31"
	// A second entry appends a new window.
	in.BookingTimes = append(in.BookingTimes, models.WindowInput{
		StartDate: "2024/08/01",
		EndDate:   "2024/08/31",
		StartTime: "10:00:00",
		EndTime:   "16:00:00",
	})

	updated, err := catalog.Edit(context.Background(), provider, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Deeper cleaning", updated.Title)
	require.Len(t, updated.Windows, 2)
	assert.Equal(t, created.Windows[0].ID, updated.Windows[0].ID, "first entry updates in place")
	assert.Equal(t, "2024/07/31", updated.Windows[0].EndDate)
	assert.NotEqual(t, created.Windows[0].ID, updated.Windows[1].ID, "surplus entry becomes a new window")
}

func TestEditServiceAuthorization(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	created, err := catalog.Create(context.Background(), provider, validInput())
	require.NoError(t, err)

	otherProvider := models.Identity{ID: "prov-2", Role: models.RoleProvider}
	_, err = catalog.Edit(context.Background(), otherProvider, created.ID, validInput())
	assert.EqualError(t, err, "Forbidden: You do not have permission to edit this service")

	// Admins may edit anyone's service.
	_, err = catalog.Edit(context.Background(), admin, created.ID, validInput())
	assert.NoError(t, err)
}

func TestEditServiceNotFound(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	_, err := catalog.Edit(context.Background(), provider, "missing", validInput())
	assert.EqualError(t, err, "Service not found")
}

func TestDeleteServiceCascades(t *testing.T) {
	catalog, services, windows := newTestCatalog()

	created, err := catalog.Create(context.Background(), provider, validInput())
	require.NoError(t, err)

	// Bookings placed against the service go with it.
	bookings := catalog.Bookings.(*fakeBookingStore)
	require.NoError(t, bookings.Create(&models.Booking{
		ID:        "bk-1",
		WindowID:  created.Windows[0].ID,
		ServiceID: created.ID,
	}))
	require.NoError(t, bookings.Create(&models.Booking{
		ID:        "bk-2",
		WindowID:  "other-window",
		ServiceID: "other-service",
	}))

	require.NoError(t, catalog.Delete(context.Background(), provider, created.ID))
	assert.Empty(t, services.services)
	remaining, _ := windows.ListByService(created.ID)
	assert.Empty(t, remaining)
	assert.Len(t, bookings.bookings, 1, "bookings of other services are untouched")
	assert.Contains(t, bookings.bookings, "bk-2")
}

func TestDeleteServiceAuthorization(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	created, err := catalog.Create(context.Background(), provider, validInput())
	require.NoError(t, err)

	otherProvider := models.Identity{ID: "prov-2", Role: models.RoleProvider}
	err = catalog.Delete(context.Background(), otherProvider, created.ID)
	assert.EqualError(t, err, "Forbidden: Insufficient permissions to delete a service")
}

func TestGetAndListServices(t *testing.T) {
	catalog, _, _ := newTestCatalog()

	created, err := catalog.Create(context.Background(), provider, validInput())
	require.NoError(t, err)

	got, err := catalog.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Len(t, got.Windows, 1)

	_, err = catalog.Get(context.Background(), "missing")
	assert.EqualError(t, err, "Service not found")

	listed, err := catalog.List(context.Background(), serviceRepo.Filter{Category: "Home Services"})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	listed, err = catalog.List(context.Background(), serviceRepo.Filter{Category: "Event Services"})
	require.NoError(t, err)
	assert.Empty(t, listed)
}
