package handlers

import (
	"bookmyservice/services/booking"
	"bookmyservice/services/catalog"
	"bookmyservice/services/review"
	"bookmyservice/services/storage"
	"bookmyservice/services/subscription"
	"bookmyservice/services/user"
)

// HandlerBundle groups the endpoint handlers with the services they
// dispatch to. Routes receive one bundle instead of individual deps.
type HandlerBundle struct {
	Users         user.UserService
	Catalog       catalog.CatalogService
	Bookings      booking.BookingEngine
	Reviews       review.ReviewService
	Subscriptions subscription.SubscriptionService
	Storage       storage.StorageService
}
