package models

import "time"

// Review is a consumer's rating of a completed service.
type Review struct {
	ID             string    `bson:"id" json:"id"`
	ConsumerID     string    `bson:"consumer_id" json:"consumer_id"`
	ProviderID     string    `bson:"provider_id" json:"provider_id"`
	ServiceID      string    `bson:"service_id" json:"service_id"`
	Rating         float64   `bson:"rating" json:"rating"`
	ReviewText     string    `bson:"review_text" json:"review_text"`
	VisibleToAdmin bool      `bson:"visible_to_admin" json:"visible_to_admin"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// ReviewInput is the caller-supplied review payload.
type ReviewInput struct {
	ConsumerID     string  `json:"consumer_id" binding:"required"`
	ProviderID     string  `json:"provider_id" binding:"required"`
	ServiceID      string  `json:"service_id" binding:"required"`
	Rating         float64 `json:"rating" binding:"required,min=0,max=5"`
	ReviewText     string  `json:"review_text" binding:"required"`
	VisibleToAdmin *bool   `json:"visible_to_admin" binding:"required"`
}
