package commands

import (
	"errors"
	"time"

	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand represents a request to schedule a delivery for an
// existing order. Each order can have at most one delivery.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	scheduledDate       time.Time
	timeSlot            delivery.TimeSlot
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to schedule a delivery.
// The time slot must be one of the supported windows and the scheduled date
// must be set.
func NewScheduleDeliveryCommand(
	orderID kernel.UUID,
	scheduledDate time.Time,
	timeSlot delivery.TimeSlot,
	specialInstructions string,
) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ScheduleDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	if scheduledDate.IsZero() {
		return ScheduleDeliveryCommand{}, errs.NewValueIsRequiredError("scheduledDate")
	}
	cmd.scheduledDate = scheduledDate

	if err := timeSlot.Validate(); err != nil {
		return ScheduleDeliveryCommand{}, err
	}
	cmd.timeSlot = timeSlot

	cmd.specialInstructions = specialInstructions

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c ScheduleDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// ScheduledDate returns the planned delivery date.
func (c ScheduleDeliveryCommand) ScheduledDate() time.Time { return c.scheduledDate }

// TimeSlot returns the delivery time window.
func (c ScheduleDeliveryCommand) TimeSlot() delivery.TimeSlot { return c.timeSlot }

// SpecialInstructions returns optional courier instructions.
func (c ScheduleDeliveryCommand) SpecialInstructions() string { return c.specialInstructions }
