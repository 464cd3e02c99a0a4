package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/ports"
	"householdplanet/internal/pkg/errs"
)

// ErrDeliveryAlreadyScheduled is returned when an order already has a
// delivery bound to it. Deliveries are 1:1 with orders.
var ErrDeliveryAlreadyScheduled = errors.New("a delivery is already scheduled for this order")

// ScheduleDeliveryCommandHandler creates deliveries for placed orders.
// Orchestrates order validation, tracking number generation, persistence and
// the scheduling SMS.
type ScheduleDeliveryCommandHandler struct {
	uowFactory UoWFactory
	sms        ports.SmsSender
	logger     *slog.Logger
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery scheduling.
func NewScheduleDeliveryCommandHandler(
	uowFactory UoWFactory,
	sms ports.SmsSender,
	logger *slog.Logger,
) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		sms:        sms,
		logger:     logger.With("component", "schedule_delivery_handler"),
	}
}

// Handle processes the scheduling command and returns the generated tracking
// number. Fails when the order does not exist or already has a delivery.
func (h *ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return "", fmt.Errorf("get order: %w", err)
	}

	_, err = uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return "", ErrDeliveryAlreadyScheduled
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return "", fmt.Errorf("check existing delivery: %w", err)
	}

	now := time.Now().UTC()
	trackingNumber := delivery.NewTrackingNumber(now)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		o.ID(),
		trackingNumber,
		cmd.ScheduledDate(),
		cmd.TimeSlot(),
		cmd.SpecialInstructions(),
		now,
	)
	if err != nil {
		return "", err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	text := formatSchedulingSms(trackingNumber, d.ScheduledDate(), d.TimeSlot())
	if _, smsErr := h.sms.Send(ctx, o.Phone(), text); smsErr != nil {
		h.logger.WarnContext(ctx, "Scheduling SMS failed", "tracking_number", trackingNumber, "error", smsErr)
	}

	return trackingNumber, nil
}
