package commands

import (
	"context"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/location"
)

// CreateLocationCommandHandler handles the business logic for catalog entries.
// Creates new delivery locations in the active catalog.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for catalog registration.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog registration command.
// Uses a transaction so the unique-name constraint surfaces as a rollback.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
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

	loc, err := location.NewLocation(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Tier(),
		cmd.Price(),
		cmd.Description(),
		cmd.EstimatedDays(),
		cmd.ExpressAvailable(),
		cmd.ExpressPrice(),
	)
	if err != nil {
		return err
	}

	if err = uow.LocationRepository().Add(ctx, loc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
