package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"householdplanet/internal/core/ports"
)

// reminderWindow is how far ahead the sweep looks for upcoming deliveries.
const reminderWindow = 24 * time.Hour

// SendDeliveryRemindersCommandHandler reminds customers about PENDING
// deliveries scheduled within the next day. Invoked periodically by the
// reminder job.
type SendDeliveryRemindersCommandHandler struct {
	uowFactory UoWFactory
	sms        ports.SmsSender
	logger     *slog.Logger
}

// NewSendDeliveryRemindersCommandHandler creates a handler for reminder sweeps.
func NewSendDeliveryRemindersCommandHandler(
	uowFactory UoWFactory,
	sms ports.SmsSender,
	logger *slog.Logger,
) SendDeliveryRemindersCommandHandler {
	return SendDeliveryRemindersCommandHandler{
		uowFactory: uowFactory,
		sms:        sms,
		logger:     logger.With("component", "send_delivery_reminders_handler"),
	}
}

// Handle runs one reminder sweep. A failed SMS is logged and skipped so one
// bad number never blocks the rest of the batch.
func (h *SendDeliveryRemindersCommandHandler) Handle(ctx context.Context, cmd SendDeliveryRemindersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := cmd.Now().Add(reminderWindow)

	deliveries, err := uow.DeliveryRepository().GetPendingScheduledBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("get pending deliveries: %w", err)
	}

	for _, d := range deliveries {
		o, err := uow.OrderRepository().Get(ctx, d.OrderID())
		if err != nil {
			h.logger.WarnContext(ctx, "Order lookup failed during reminder sweep",
				"tracking_number", d.TrackingNumber(), "error", err)
			continue
		}

		text := formatReminderSms(d.TrackingNumber(), d.ScheduledDate(), d.TimeSlot())
		if _, smsErr := h.sms.Send(ctx, o.Phone(), text); smsErr != nil {
			h.logger.WarnContext(ctx, "Reminder SMS failed",
				"tracking_number", d.TrackingNumber(), "error", smsErr)
		}
	}

	return uow.Commit(ctx)
}
