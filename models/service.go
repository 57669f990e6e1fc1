package models

import "time"

// AllowedCategories is the fixed catalog taxonomy. Service creation and
// edits reject categories outside this list.
var AllowedCategories = []string{
	"Home Services",
	"Personal Services",
	"Event Services",
	"Health and Wellness",
	"Automotive Services",
	"Educational Services",
	"Technology Services",
	"Business Services",
	"Delivery and Logistics",
	"Repair and Maintenance",
}

// Service is a provider's published offering.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"provider_id" json:"provider_id"`
	Category    string    `bson:"category" json:"category"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// AvailabilityWindow is a span of calendar dates and a daily span of clock
// times during which a service accepts bookings. Dates use the fixed
// "YYYY/MM/DD" form and times "HH:MM:SS"; both ends of both ranges are
// inclusive. A service owns its windows exclusively and deleting the
// service deletes them.
type AvailabilityWindow struct {
	ID         string    `bson:"id" json:"id"`
	ServiceID  string    `bson:"service_id" json:"service_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	StartDate  string    `bson:"start_date" json:"start_date"`
	EndDate    string    `bson:"end_date" json:"end_date"`
	StartTime  string    `bson:"start_time" json:"start_time"`
	EndTime    string    `bson:"end_time" json:"end_time"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// WindowInput is the caller-supplied shape of an availability window on
// service creation and edit.
type WindowInput struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ServiceWithWindows bundles a service with its availability windows for
// catalog listings and detail views.
type ServiceWithWindows struct {
	Service
	Windows []AvailabilityWindow `json:"booking_times"`
}
