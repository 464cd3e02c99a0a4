package jobs

import (
	"context"
	"log/slog"
	"time"

	"householdplanet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryReminderJob periodically reminds customers about pending deliveries
// that are scheduled within the next day.
type DeliveryReminderJob struct {
	handler commands.SendDeliveryRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryReminderJob creates a job that runs a reminder sweep every minute.
func NewDeliveryReminderJob(handler commands.SendDeliveryRemindersCommandHandler, logger *slog.Logger) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_reminder_job"),
	}
}

// Start begins the reminder job to run every minute.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewSendDeliveryRemindersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build reminder command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}
