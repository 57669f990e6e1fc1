package models

// Email kinds the notification service knows how to render.
const (
	EmailBookingConfirmation = "booking_confirmation"
	EmailNewBooking          = "new_booking"
	EmailVerification        = "email_verification"
	EmailPasswordReset       = "password_reset"
	EmailPasswordChanged     = "password_changed"
)

// EmailPayload is the queued unit of work for the mail worker. Template
// data keys depend on the kind; unknown keys are ignored by the renderer.
type EmailPayload struct {
	Kind      string            `json:"kind"`
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data"`
}
