package commands

import (
	"errors"
	"time"

	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrSendDeliveryRemindersCommandIsNotConstructed = errors.New(
	"SendDeliveryRemindersCommand must be created via NewSendDeliveryRemindersCommand constructor",
)

// SendDeliveryRemindersCommand represents a periodic sweep that reminds
// customers about upcoming deliveries still awaiting confirmation.
type SendDeliveryRemindersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewSendDeliveryRemindersCommand creates a reminder sweep command anchored
// at the given wall-clock time.
func NewSendDeliveryRemindersCommand(now time.Time) (SendDeliveryRemindersCommand, error) {
	cmd := SendDeliveryRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if now.IsZero() {
		return SendDeliveryRemindersCommand{}, errs.NewValueIsRequiredError("now")
	}
	cmd.now = now

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendDeliveryRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendDeliveryRemindersCommandIsNotConstructed)
}

// Now returns the sweep's anchor time.
func (c SendDeliveryRemindersCommand) Now() time.Time { return c.now }
