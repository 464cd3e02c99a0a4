package commands

import (
	"errors"

	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a request to move a delivery to a
// new workflow status. Completion and failure carry extra payload: a photo
// proof on delivery, a mandatory reason on failure.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	status         delivery.Status
	notes          string
	photoProof     string
	failureReason  string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to update delivery status.
// A FAILED status requires a failure reason.
func NewUpdateDeliveryStatusCommand(
	trackingNumber string,
	status delivery.Status,
	notes string,
	photoProof string,
	failureReason string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if trackingNumber == "" {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	cmd.trackingNumber = trackingNumber

	if err := status.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	cmd.status = status

	if status == delivery.Failed && failureReason == "" {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsRequiredError("failureReason")
	}
	cmd.failureReason = failureReason

	cmd.notes = notes
	cmd.photoProof = photoProof

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// TrackingNumber returns the delivery's customer-facing identifier.
func (c UpdateDeliveryStatusCommand) TrackingNumber() string { return c.trackingNumber }

// Status returns the target workflow status.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status { return c.status }

// Notes returns optional audit-trail notes.
func (c UpdateDeliveryStatusCommand) Notes() string { return c.notes }

// PhotoProof returns the proof-of-delivery reference, set on completion.
func (c UpdateDeliveryStatusCommand) PhotoProof() string { return c.photoProof }

// FailureReason returns the reason a delivery failed.
func (c UpdateDeliveryStatusCommand) FailureReason() string { return c.failureReason }
