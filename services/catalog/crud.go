package catalog

import (
	"context"
	"fmt"

	serviceRepo "bookmyservice/database/repository/service"
	"bookmyservice/models"
	"bookmyservice/services/booking"
	"bookmyservice/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func isAllowedCategory(category string) bool {
	for _, c := range models.AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// validWindowInput checks the date and time shapes of a window entry
// with the same validators the booking engine applies later.
func validWindowInput(w models.WindowInput) bool {
	return booking.IsValidDateFormat(w.StartDate) &&
		booking.IsValidDateFormat(w.EndDate) &&
		booking.IsValidTimeFormat(w.StartTime) &&
		booking.IsValidTimeFormat(w.EndTime)
}

func (s *DefaultCatalogService) canManage(caller models.Identity, svc *models.Service) bool {
	return caller.IsAdmin() || (caller.Role == models.RoleProvider && caller.ID == svc.ProviderID)
}

// Create publishes a service with its availability windows.
func (s *DefaultCatalogService) Create(ctx context.Context, caller models.Identity, in ServiceInput) (*models.ServiceWithWindows, error) {
	logger := utils.GetLogger()

	if !isAllowedCategory(in.Category) {
		return nil, fmt.Errorf("Invalid category")
	}
	for _, w := range in.BookingTimes {
		if !validWindowInput(w) {
			return nil, fmt.Errorf("Invalid booking times")
		}
	}

	// Admins may publish on behalf of a provider.
	providerID := caller.ID
	if caller.IsAdmin() && in.ProviderID != "" {
		providerID = in.ProviderID
	}

	svc := &models.Service{
		ID:          uuid.New().String(),
		ProviderID:  providerID,
		Category:    in.Category,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := s.Services.Create(svc); err != nil {
		logger.Error("Create: failed to create service", zap.Error(err))
		return nil, fmt.Errorf("failed to create service")
	}

	windows := make([]models.AvailabilityWindow, 0, len(in.BookingTimes))
	for _, w := range in.BookingTimes {
		window := models.AvailabilityWindow{
			ID:         uuid.New().String(),
			ServiceID:  svc.ID,
			ProviderID: providerID,
			StartDate:  w.StartDate,
			EndDate:    w.EndDate,
			StartTime:  w.StartTime,
			EndTime:    w.EndTime,
		}
		if err := s.Windows.Create(&window); err != nil {
			logger.Error("Create: failed to create window",
				zap.String("serviceID", svc.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to create service")
		}
		windows = append(windows, window)
	}

	return &models.ServiceWithWindows{Service: *svc, Windows: windows}, nil
}

// Edit updates a service; windows are updated in place, with extra
// entries appended as new windows.
func (s *DefaultCatalogService) Edit(ctx context.Context, caller models.Identity, serviceID string, in ServiceInput) (*models.ServiceWithWindows, error) {
	logger := utils.GetLogger()

	if !isAllowedCategory(in.Category) {
		return nil, fmt.Errorf("Invalid category")
	}
	for _, w := range in.BookingTimes {
		if !validWindowInput(w) {
			return nil, fmt.Errorf("Invalid booking times")
		}
	}

	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		logger.Error("Edit: failed to fetch service", zap.Error(err))
		return nil, fmt.Errorf("failed to update service")
	}
	if svc == nil {
		return nil, fmt.Errorf("Service not found")
	}
	if !s.canManage(caller, svc) {
		return nil, fmt.Errorf("Forbidden: You do not have permission to edit this service")
	}

	svc.Category = in.Category
	svc.Title = in.Title
	svc.Description = in.Description
	svc.Price = in.Price
	if err := s.Services.Update(svc); err != nil {
		logger.Error("Edit: failed to update service", zap.Error(err))
		return nil, fmt.Errorf("failed to update service")
	}

	existing, err := s.Windows.ListByService(serviceID)
	if err != nil {
		logger.Error("Edit: failed to list windows", zap.Error(err))
		return nil, fmt.Errorf("failed to update service")
	}

	// Entries are matched to existing windows positionally; surplus
	// entries become new windows. Existing bookings are not re-validated
	// against edited ranges.
	windows := make([]models.AvailabilityWindow, 0, len(in.BookingTimes))
	for i, w := range in.BookingTimes {
		if i < len(existing) {
			window := existing[i]
			window.StartDate = w.StartDate
			window.EndDate = w.EndDate
			window.StartTime = w.StartTime
			window.EndTime = w.EndTime
			if err := s.Windows.Update(&window); err != nil {
				logger.Error("Edit: failed to update window",
					zap.String("windowID", window.ID), zap.Error(err))
				return nil, fmt.Errorf("failed to update service")
			}
			windows = append(windows, window)
			continue
		}
		window := models.AvailabilityWindow{
			ID:         uuid.New().String(),
			ServiceID:  svc.ID,
			ProviderID: svc.ProviderID,
			StartDate:  w.StartDate,
			EndDate:    w.EndDate,
			StartTime:  w.StartTime,
			EndTime:    w.EndTime,
		}
		if err := s.Windows.Create(&window); err != nil {
			logger.Error("Edit: failed to create window",
				zap.String("serviceID", svc.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to update service")
		}
		windows = append(windows, window)
	}

	return &models.ServiceWithWindows{Service: *svc, Windows: windows}, nil
}

// Delete removes a service and cascades to its windows and bookings.
func (s *DefaultCatalogService) Delete(ctx context.Context, caller models.Identity, serviceID string) error {
	logger := utils.GetLogger()

	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		logger.Error("Delete: failed to fetch service", zap.Error(err))
		return fmt.Errorf("failed to delete service")
	}
	if svc == nil {
		return fmt.Errorf("Service not found")
	}
	if !s.canManage(caller, svc) {
		return fmt.Errorf("Forbidden: Insufficient permissions to delete a service")
	}

	// Windows and bookings are owned exclusively by the service and go
	// with it.
	if err := s.Bookings.DeleteByService(serviceID); err != nil {
		logger.Error("Delete: failed to delete bookings", zap.Error(err))
		return fmt.Errorf("failed to delete service")
	}
	if err := s.Windows.DeleteByService(serviceID); err != nil {
		logger.Error("Delete: failed to delete windows", zap.Error(err))
		return fmt.Errorf("failed to delete service")
	}
	if err := s.Services.Delete(serviceID); err != nil {
		logger.Error("Delete: failed to delete service", zap.Error(err))
		return fmt.Errorf("failed to delete service")
	}
	return nil
}

// Get retrieves one service with its windows.
func (s *DefaultCatalogService) Get(ctx context.Context, serviceID string) (*models.ServiceWithWindows, error) {
	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		utils.GetLogger().Error("Get: failed to fetch service", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch service")
	}
	if svc == nil {
		return nil, fmt.Errorf("Service not found")
	}
	windows, err := s.Windows.ListByService(serviceID)
	if err != nil {
		utils.GetLogger().Error("Get: failed to list windows", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch service")
	}
	return &models.ServiceWithWindows{Service: *svc, Windows: windows}, nil
}

// List retrieves services matching the filter, each with windows.
func (s *DefaultCatalogService) List(ctx context.Context, filter serviceRepo.Filter) ([]models.ServiceWithWindows, error) {
	services, err := s.Services.List(filter)
	if err != nil {
		utils.GetLogger().Error("List: failed to list services", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch services")
	}

	out := make([]models.ServiceWithWindows, 0, len(services))
	for _, svc := range services {
		windows, err := s.Windows.ListByService(svc.ID)
		if err != nil {
			utils.GetLogger().Error("List: failed to list windows",
				zap.String("serviceID", svc.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to fetch services")
		}
		out = append(out, models.ServiceWithWindows{Service: svc, Windows: windows})
	}
	return out, nil
}
