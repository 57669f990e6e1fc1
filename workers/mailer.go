package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"bookmyservice/config"
	"bookmyservice/models"
	"bookmyservice/services/notification"
	"bookmyservice/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// MailWorker drains the email queue and delivers over SMTP.
type MailWorker struct {
	srv *asynq.Server
}

// NewMailWorker builds the worker against the queue Redis DB.
func NewMailWorker() *MailWorker {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	return &MailWorker{srv: srv}
}

// Start runs the worker in the background, retrying startup with
// backoff when Redis is not yet reachable.
func (w *MailWorker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeEmailSend, handleEmailTask)

	go func() {
		logger := utils.GetLogger()
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			logger.Info("starting mail worker", zap.Int("attempt", attempt))
			err := w.srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("mail worker failed to start",
				zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("mail worker exhausted startup attempts")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

// Shutdown stops the worker and waits for in-flight tasks.
func (w *MailWorker) Shutdown() {
	w.srv.Shutdown()
}

func handleEmailTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.EmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("mail worker: invalid payload", zap.Error(err))
		return err
	}

	subject, body, err := renderEmail(p)
	if err != nil {
		logger.Error("mail worker: failed to render email",
			zap.String("kind", p.Kind), zap.Error(err))
		// Unknown kinds never become deliverable; do not retry.
		return nil
	}

	if err := sendSMTP(p.Recipient, subject, body); err != nil {
		logger.Error("mail worker: failed to deliver email",
			zap.String("kind", p.Kind), zap.Error(err))
		return err
	}
	logger.Info("email delivered",
		zap.String("kind", p.Kind), zap.String("recipient", p.Recipient))
	return nil
}

// renderEmail maps a payload to a subject and plain-text body.
func renderEmail(p models.EmailPayload) (string, string, error) {
	d := p.Data
	switch p.Kind {
	case models.EmailBookingConfirmation:
		body := fmt.Sprintf(
			"Dear %s,\n\nThank you for booking with us!\n\nBooking Details:\nService: %s\nDescription: %s\nDate and Time: %s %s\nPhone Number: %s\n\nWe look forward to serving you!\n\nBest regards,\nThe BookMyService Team",
			d["consumer_name"], d["service_title"], d["service_description"],
			d["booked_date"], d["booked_time"], d["provider_phone"])
		return "Booking Confirmation", body, nil
	case models.EmailNewBooking:
		body := fmt.Sprintf(
			"Dear %s,\n\nYou have a new booking!\n\nBooking Details:\nConsumer: %s\nService: %s\nDescription: %s\nDate and Time: %s %s\nPhone Number: %s\n\nPlease be prepared for the appointment.\n\nBest regards,\nThe BookMyService Team",
			d["provider_name"], d["consumer_name"], d["service_title"],
			d["service_description"], d["booked_date"], d["booked_time"],
			d["consumer_phone"])
		return "New Booking", body, nil
	case models.EmailVerification:
		body := fmt.Sprintf(
			"Use the following code to verify your email:\n\n%s\n\nEnter this code in the application to complete the verification process.",
			d["code"])
		return "Email Verification", body, nil
	case models.EmailPasswordReset:
		body := fmt.Sprintf(
			"Use the following code to change your password:\n\n%s\n\nEnter this code in the application to complete the change of password process.",
			d["code"])
		return "Password Reset", body, nil
	case models.EmailPasswordChanged:
		return "Password Reset", "Your Password has been changed successfully", nil
	default:
		return "", "", fmt.Errorf("unknown email kind %q", p.Kind)
	}
}

func sendSMTP(recipient, subject, body string) error {
	cfg := config.AppConfig

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", cfg.EmailFrom)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, cfg.EmailFrom, []string{recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
