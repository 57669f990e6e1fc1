package notification

import (
	"encoding/json"

	"bookmyservice/models"

	"github.com/hibiken/asynq"
)

// TypeEmailSend is the asynq task type for outgoing email.
const TypeEmailSend = "email:send"

// NewEmailTask builds an asynq task carrying an email payload.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailSend, b), nil
}
