package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// SubmitFeedbackCommandHandler records customer feedback against a delivery.
type SubmitFeedbackCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *slog.Logger
}

// NewSubmitFeedbackCommandHandler creates a handler for feedback submission.
func NewSubmitFeedbackCommandHandler(
	uowFactory DeliveryUoWFactory,
	logger *slog.Logger,
) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "submit_feedback_handler"),
	}
}

// Handle processes the feedback command. Customers may submit feedback more
// than once for the same delivery; every submission is kept.
func (h *SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) error {
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

	if _, err = d.AddFeedback(cmd.Rating(), cmd.Comment(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
