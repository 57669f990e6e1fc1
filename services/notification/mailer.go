package notification

import (
	"context"
	"fmt"

	"bookmyservice/config"
	"bookmyservice/models"

	"github.com/hibiken/asynq"
)

// QueueNotificationService queues email through asynq; the mail worker
// drains the queue and performs SMTP delivery out of the request path.
type QueueNotificationService struct {
	client *asynq.Client
}

// NewQueueNotificationService creates a queue-backed notification service.
func NewQueueNotificationService() *QueueNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &QueueNotificationService{client: client}
}

// Notify queues an email of the given kind to the recipient.
func (s *QueueNotificationService) Notify(ctx context.Context, kind, recipient string, data map[string]string) error {
	if recipient == "" {
		return fmt.Errorf("notification has no recipient")
	}
	task, err := NewEmailTask(models.EmailPayload{
		Kind:      kind,
		Recipient: recipient,
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *QueueNotificationService) Close() error {
	return s.client.Close()
}
