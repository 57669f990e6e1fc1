package subscription

import (
	"context"
	"fmt"
	"time"

	subscriptionRepo "bookmyservice/database/repository/subscription"
	"bookmyservice/models"
	"bookmyservice/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubscriptionService manages provider subscription plans.
type SubscriptionService interface {
	// Create records a subscription for a provider; admin only.
	Create(ctx context.Context, caller models.Identity, providerID string, in models.SubscriptionInput) (*models.Subscription, error)
	// Edit updates a subscription; admin or the owning provider.
	Edit(ctx context.Context, caller models.Identity, subscriptionID string, in models.SubscriptionInput) (*models.Subscription, error)
	// Delete removes a subscription; admin or the owning provider.
	Delete(ctx context.Context, caller models.Identity, subscriptionID string) error
	// ListByProvider retrieves a provider's subscriptions; the provider
	// themselves or an admin.
	ListByProvider(ctx context.Context, caller models.Identity, providerID string) ([]models.Subscription, error)
}

// DefaultSubscriptionService is the production subscription service.
type DefaultSubscriptionService struct {
	Repo subscriptionRepo.SubscriptionRepository
}

func (s *DefaultSubscriptionService) Create(ctx context.Context, caller models.Identity, providerID string, in models.SubscriptionInput) (*models.Subscription, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("Forbidden: You are not authorized to perform this action")
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	now := time.Now()
	sub := &models.Subscription{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		ExpiryDate: in.ExpiryDate,
		Currency:   currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(sub); err != nil {
		utils.GetLogger().Error("Create: failed to create subscription", zap.Error(err))
		return nil, fmt.Errorf("failed to create subscription")
	}
	return sub, nil
}

func (s *DefaultSubscriptionService) Edit(ctx context.Context, caller models.Identity, subscriptionID string, in models.SubscriptionInput) (*models.Subscription, error) {
	sub, err := s.Repo.GetByID(subscriptionID)
	if err != nil {
		utils.GetLogger().Error("Edit: failed to fetch subscription", zap.Error(err))
		return nil, fmt.Errorf("failed to update subscription")
	}
	if sub == nil {
		return nil, fmt.Errorf("Subscription not found")
	}
	if !caller.IsAdmin() && caller.ID != sub.ProviderID {
		return nil, fmt.Errorf("Forbidden: You are not authorized to edit this subscription")
	}

	sub.ExpiryDate = in.ExpiryDate
	if in.Currency != "" {
		sub.Currency = in.Currency
	}
	sub.UpdatedAt = time.Now()
	if err := s.Repo.Update(sub); err != nil {
		utils.GetLogger().Error("Edit: failed to update subscription",
			zap.String("subscriptionID", subscriptionID), zap.Error(err))
		return nil, fmt.Errorf("failed to update subscription")
	}
	return sub, nil
}

func (s *DefaultSubscriptionService) Delete(ctx context.Context, caller models.Identity, subscriptionID string) error {
	sub, err := s.Repo.GetByID(subscriptionID)
	if err != nil {
		utils.GetLogger().Error("Delete: failed to fetch subscription", zap.Error(err))
		return fmt.Errorf("failed to delete subscription")
	}
	if sub == nil {
		return fmt.Errorf("Subscription not found")
	}
	if !caller.IsAdmin() && caller.ID != sub.ProviderID {
		return fmt.Errorf("Forbidden: You are not authorized to delete this subscription")
	}
	if err := s.Repo.Delete(subscriptionID); err != nil {
		utils.GetLogger().Error("Delete: failed to delete subscription",
			zap.String("subscriptionID", subscriptionID), zap.Error(err))
		return fmt.Errorf("failed to delete subscription")
	}
	return nil
}

func (s *DefaultSubscriptionService) ListByProvider(ctx context.Context, caller models.Identity, providerID string) ([]models.Subscription, error) {
	if !caller.IsAdmin() && caller.ID != providerID {
		return nil, fmt.Errorf("Forbidden: You are not authorized to view these subscriptions")
	}
	subs, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		utils.GetLogger().Error("ListByProvider: failed to list subscriptions", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch subscriptions")
	}
	return subs, nil
}
