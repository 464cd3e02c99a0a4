package commands

import (
	"errors"
	"time"

	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrRescheduleDeliveryCommandIsNotConstructed = errors.New(
	"RescheduleDeliveryCommand must be created via NewRescheduleDeliveryCommand constructor",
)

// RescheduleDeliveryCommand represents a request to move a delivery to a new
// date and time slot after a failed attempt or a customer request.
type RescheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	newDate        time.Time
	timeSlot       delivery.TimeSlot
	notes          string

	guard guard.ConstructorGuard
}

// NewRescheduleDeliveryCommand creates a command to reschedule a delivery.
func NewRescheduleDeliveryCommand(
	trackingNumber string,
	newDate time.Time,
	timeSlot delivery.TimeSlot,
	notes string,
) (RescheduleDeliveryCommand, error) {
	cmd := RescheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if trackingNumber == "" {
		return RescheduleDeliveryCommand{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	cmd.trackingNumber = trackingNumber

	if newDate.IsZero() {
		return RescheduleDeliveryCommand{}, errs.NewValueIsRequiredError("newDate")
	}
	cmd.newDate = newDate

	if err := timeSlot.Validate(); err != nil {
		return RescheduleDeliveryCommand{}, err
	}
	cmd.timeSlot = timeSlot

	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleDeliveryCommandIsNotConstructed)
}

// TrackingNumber returns the delivery's customer-facing identifier.
func (c RescheduleDeliveryCommand) TrackingNumber() string { return c.trackingNumber }

// NewDate returns the rescheduled delivery date.
func (c RescheduleDeliveryCommand) NewDate() time.Time { return c.newDate }

// TimeSlot returns the rescheduled delivery time window.
func (c RescheduleDeliveryCommand) TimeSlot() delivery.TimeSlot { return c.timeSlot }

// Notes returns optional audit-trail notes.
func (c RescheduleDeliveryCommand) Notes() string { return c.notes }
