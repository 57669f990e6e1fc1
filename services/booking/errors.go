package booking

import "fmt"

// Error codes for booking rejections. Handlers map codes to HTTP statuses;
// messages go to the caller verbatim except for storeError, whose detail
// stays server-side.
const (
	CodeForbidden     = "forbidden"
	CodeInvalidWindow = "invalidWindow"
	CodeInvalidDate   = "invalidDate"
	CodeInvalidTime   = "invalidTime"
	CodeSlotTaken     = "slotTaken"
	CodeNotFound      = "notFound"
	CodeStoreFailure  = "storeFailure"
)

// Error is a typed booking rejection.
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause, when any, for server-side logging.
func (e *Error) Unwrap() error { return e.cause }

var (
	ErrForbidden = &Error{
		Code:    CodeForbidden,
		Message: "Forbidden: Only consumers can create bookings",
	}
	ErrInvalidWindow = &Error{
		Code:    CodeInvalidWindow,
		Message: "Invalid booking time or service does not have available booking times.",
	}
	ErrInvalidDate = &Error{
		Code:    CodeInvalidDate,
		Message: "Invalid or out-of-range date.",
	}
	ErrInvalidTime = &Error{
		Code:    CodeInvalidTime,
		Message: "Invalid or out-of-range time.",
	}
	ErrSlotTaken = &Error{
		Code:    CodeSlotTaken,
		Message: "Someone else has already booked the same date and time slot.",
	}
	ErrBookingNotFound = &Error{
		Code:    CodeNotFound,
		Message: "Booking not found",
	}
)

// storeError wraps an unexpected record-store failure. The wrapped detail
// is logged at the call site and never echoed to the caller.
func storeError(err error) *Error {
	return &Error{Code: CodeStoreFailure, Message: "An error occurred", cause: err}
}
