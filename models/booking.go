package models

import "time"

// Booking is one consumer's accepted reservation of a specific date and
// time inside an availability window. At most one booking may exist per
// (window_id, booked_date, booked_time) triple; the bookings collection
// carries a unique index on exactly that triple.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	WindowID   string    `bson:"window_id" json:"window_id"`
	ServiceID  string    `bson:"service_id" json:"service_id"`
	ConsumerID string    `bson:"consumer_id" json:"consumer_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	BookedDate string    `bson:"booked_date" json:"booked_date"`
	BookedTime string    `bson:"booked_time" json:"booked_time"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the caller-supplied shape of a booking attempt.
type BookingRequest struct {
	WindowID   string `json:"window_id" binding:"required"`
	BookedDate string `json:"booked_date" binding:"required"`
	BookedTime string `json:"booked_time" binding:"required"`
}
