package models

import "time"

// Subscription records a provider's paid plan window.
type Subscription struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	ExpiryDate time.Time `bson:"expiry_date" json:"expiry_date"`
	Currency   string    `bson:"currency" json:"currency"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// SubscriptionInput is the caller-supplied subscription payload.
type SubscriptionInput struct {
	ExpiryDate time.Time `json:"expiry_date" binding:"required"`
	Currency   string    `json:"currency"`
}
