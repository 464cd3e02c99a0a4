package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"householdplanet/internal/core/ports"
)

// RescheduleDeliveryCommandHandler moves deliveries to a new date.
// Each reschedule is counted on the aggregate and recorded in the audit
// trail, and the customer gets a fresh scheduling SMS.
type RescheduleDeliveryCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.TrackingCache
	sms        ports.SmsSender
	logger     *slog.Logger
}

// NewRescheduleDeliveryCommandHandler creates a handler for reschedules.
func NewRescheduleDeliveryCommandHandler(
	uowFactory UoWFactory,
	cache ports.TrackingCache,
	sms ports.SmsSender,
	logger *slog.Logger,
) RescheduleDeliveryCommandHandler {
	return RescheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		sms:        sms,
		logger:     logger.With("component", "reschedule_delivery_handler"),
	}
}

// Handle processes the reschedule command.
func (h *RescheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd RescheduleDeliveryCommand) error {
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

	d, err := uow.DeliveryRepository().GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}

	if err = d.Reschedule(cmd.NewDate(), cmd.TimeSlot(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cacheErr := h.cache.Invalidate(ctx, d.TrackingNumber()); cacheErr != nil {
		h.logger.WarnContext(ctx, "Tracking cache invalidation failed",
			"tracking_number", d.TrackingNumber(), "error", cacheErr)
	}

	text := formatSchedulingSms(d.TrackingNumber(), d.ScheduledDate(), d.TimeSlot())
	if _, smsErr := h.sms.Send(ctx, o.Phone(), text); smsErr != nil {
		h.logger.WarnContext(ctx, "Reschedule SMS failed",
			"tracking_number", d.TrackingNumber(), "error", smsErr)
	}

	return nil
}
