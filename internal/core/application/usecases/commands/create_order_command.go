package commands

import (
	"errors"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a placed order with the
// delivery service. Orders must exist before a delivery can be scheduled for
// them.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	phone        string
	locationName string
	itemCount    int
	subtotal     float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an order.
// Validates identity, customer contact, destination and quantities.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	phone string,
	locationName string,
	itemCount int,
	subtotal float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.orderID = orderID

	if customerName == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("customerName")
	}
	cmd.customerName = customerName

	if phone == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("phone")
	}
	cmd.phone = phone

	if locationName == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("locationName")
	}
	cmd.locationName = locationName

	if itemCount <= 0 {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("itemCount")
	}
	cmd.itemCount = itemCount

	if subtotal < 0 {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("subtotal")
	}
	cmd.subtotal = subtotal

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the name of the ordering customer.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// Phone returns the customer's phone number.
func (c CreateOrderCommand) Phone() string { return c.phone }

// LocationName returns the delivery destination's catalog name.
func (c CreateOrderCommand) LocationName() string { return c.locationName }

// ItemCount returns the number of items in the order.
func (c CreateOrderCommand) ItemCount() int { return c.itemCount }

// Subtotal returns the order value before shipping.
func (c CreateOrderCommand) Subtotal() float64 { return c.subtotal }
