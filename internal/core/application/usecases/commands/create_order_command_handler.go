package commands

import (
	"context"
	"log/slog"

	"householdplanet/internal/core/domain/model/order"
	"householdplanet/internal/core/ports"
)

// CreateOrderCommandHandler registers placed orders with the delivery service
// and sends the order-confirmation SMS.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sms        ports.SmsSender
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sms ports.SmsSender,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sms:        sms,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order registration command.
// The confirmation SMS is sent best-effort after the transaction commits;
// a notification failure never fails the registration.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.LocationName(),
		cmd.ItemCount(),
		cmd.Subtotal(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	text := formatOrderConfirmationSms(o.CustomerName(), o.Subtotal())
	if _, smsErr := h.sms.Send(ctx, o.Phone(), text); smsErr != nil {
		h.logger.WarnContext(ctx, "Order confirmation SMS failed", "order_id", o.ID().String(), "error", smsErr)
	}

	return nil
}
