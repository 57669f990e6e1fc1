package notification

import "context"

// NotificationService delivers transactional email. Callers treat it as
// fire-and-forget: a failed enqueue is logged by the caller, never
// surfaced to the end user as an operation failure.
type NotificationService interface {
	// Notify queues an email of the given kind to the recipient. Data
	// keys feed the body template for that kind.
	Notify(ctx context.Context, kind, recipient string, data map[string]string) error
}
