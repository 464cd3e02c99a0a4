package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler advances deliveries through the status
// workflow. Every accepted transition appends an audit-trail entry, drops the
// cached tracking snapshot and notifies the customer.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.TrackingCache
	sms        ports.SmsSender
	logger     *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status updates.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	cache ports.TrackingCache,
	sms ports.SmsSender,
	logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		sms:        sms,
		logger:     logger.With("component", "update_delivery_status_handler"),
	}
}

// Handle processes the status update command.
// Transitions not allowed by the workflow are rejected before any write.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	now := time.Now().UTC()

	switch cmd.Status() {
	case delivery.Delivered:
		err = d.MarkDelivered(cmd.PhotoProof(), cmd.Notes(), now)
	case delivery.Failed:
		err = d.MarkFailed(cmd.FailureReason(), cmd.Notes(), now)
	default:
		err = d.ChangeStatus(cmd.Status(), cmd.Notes(), now)
	}
	if err != nil {
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

	text := formatStatusUpdateSms(d.TrackingNumber(), d.Status())
	if d.Status() == delivery.Delivered {
		text = formatCompletionSms(d.TrackingNumber())
	}
	if _, smsErr := h.sms.Send(ctx, o.Phone(), text); smsErr != nil {
		h.logger.WarnContext(ctx, "Status update SMS failed",
			"tracking_number", d.TrackingNumber(), "error", smsErr)
	}

	return nil
}
