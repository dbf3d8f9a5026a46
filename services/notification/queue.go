package notification

import (
	"github.com/rightguydaniel/deluxconex-BE/config"
	"github.com/rightguydaniel/deluxconex-BE/services/tasks"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueMailer enqueues messages onto the Redis mail queue for asynchronous
// delivery by the mail worker. When the queue is unreachable it falls back
// to sending synchronously through Fallback so a Redis outage does not
// silence notifications.
type QueueMailer struct {
	client   *asynq.Client
	Fallback Mailer
}

// NewQueueMailer builds a QueueMailer on the configured Redis instance.
func NewQueueMailer(fallback Mailer) *QueueMailer {
	cfg := config.AppConfig
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisMailQueueDB,
	})
	return &QueueMailer{client: client, Fallback: fallback}
}

// Send enqueues the message for delivery.
func (m *QueueMailer) Send(to, subject, textBody, htmlBody string) error {
	task, err := tasks.NewMailTask(tasks.MailPayload{
		To:       to,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		return err
	}

	if _, err := m.client.Enqueue(task); err != nil {
		utils.GetLogger().Warn("QueueMailer: enqueue failed, sending synchronously",
			zap.String("to", to), zap.Error(err))
		if m.Fallback != nil {
			return m.Fallback.Send(to, subject, textBody, htmlBody)
		}
		return err
	}
	return nil
}

// Close releases the underlying queue connection.
func (m *QueueMailer) Close() error {
	return m.client.Close()
}
