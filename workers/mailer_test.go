package workers

import (
	"testing"

	"bookmyservice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmailBookingConfirmation(t *testing.T) {
	subject, body, err := renderEmail(models.EmailPayload{
		Kind:      models.EmailBookingConfirmation,
		Recipient: "consumer@example.com",
		Data: map[string]string{
			"consumer_name":       "alice",
			"service_title":       "Haircut",
			"service_description": "A haircut",
			"booked_date":         "2024/06/15",
			"booked_time":         "10:00:00",
			"provider_phone":      "555-0100",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Booking Confirmation", subject)
	assert.Contains(t, body, "Dear alice,")
	assert.Contains(t, body, "Service: Haircut")
	assert.Contains(t, body, "Date and Time: 2024/06/15 10:00:00")
	assert.Contains(t, body, "The BookMyService Team")
}

func TestRenderEmailNewBooking(t *testing.T) {
	subject, body, err := renderEmail(models.EmailPayload{
		Kind: models.EmailNewBooking,
		Data: map[string]string{
			"provider_name": "bob",
			"consumer_name": "alice",
			"service_title": "Haircut",
			"booked_date":   "2024/06/15",
			"booked_time":   "10:00:00",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Booking", subject)
	assert.Contains(t, body, "Dear bob,")
	assert.Contains(t, body, "You have a new booking!")
	assert.Contains(t, body, "Consumer: alice")
}

func TestRenderEmailCodes(t *testing.T) {
	subject, body, err := renderEmail(models.EmailPayload{
		Kind: models.EmailVerification,
		Data: map[string]string{"code": "ABC123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Email Verification", subject)
	assert.Contains(t, body, "ABC123")

	subject, body, err = renderEmail(models.EmailPayload{
		Kind: models.EmailPasswordReset,
		Data: map[string]string{"code": "XYZ789"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Password Reset", subject)
	assert.Contains(t, body, "XYZ789")

	subject, body, err = renderEmail(models.EmailPayload{Kind: models.EmailPasswordChanged})
	require.NoError(t, err)
	assert.Equal(t, "Password Reset", subject)
	assert.Contains(t, body, "changed successfully")
}

func TestRenderEmailUnknownKind(t *testing.T) {
	_, _, err := renderEmail(models.EmailPayload{Kind: "carrier_pigeon"})
	assert.Error(t, err)
}
