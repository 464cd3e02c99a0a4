package order

import (
	"errors"
	"fmt"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the placed-order aggregate the delivery workflow binds to.
// A delivery can only be scheduled against an existing order, and the
// shipping calculator reads the order's item count and subtotal when
// resolving bulk discounts.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Customer name, phone and destination location name are required
//   - Item count must be positive, subtotal non-negative
type Order struct {
	id           kernel.UUID
	customerName string
	phone        string
	locationName string
	itemCount    int
	subtotal     float64

	isConstructed bool
}

// NewOrder creates a new Order with validation.
func NewOrder(
	id kernel.UUID,
	customerName string,
	phone string,
	locationName string,
	itemCount int,
	subtotal float64,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setPhone(phone),
		o.setLocationName(locationName),
		o.setItemCount(itemCount),
		o.setSubtotal(subtotal),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Validation rules match NewOrder.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	phone string,
	locationName string,
	itemCount int,
	subtotal float64,
) (*Order, error) {
	return NewOrder(id, customerName, phone, locationName, itemCount, subtotal)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the customer's phone number for SMS notifications.
func (o *Order) Phone() string {
	return o.phone
}

// LocationName returns the delivery destination's catalog name.
func (o *Order) LocationName() string {
	return o.locationName
}

// ItemCount returns the number of items in the order.
func (o *Order) ItemCount() int {
	return o.itemCount
}

// Subtotal returns the order value before shipping and discounts.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setLocationName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("locationName")
	}
	o.locationName = name
	return nil
}

func (o *Order) setItemCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemCount", fmt.Errorf("%d is not greater than 0", count))
	}
	o.itemCount = count
	return nil
}

func (o *Order) setSubtotal(subtotal float64) error {
	if subtotal < 0 {
		return errs.NewValueIsInvalidErrorWithCause("subtotal", fmt.Errorf("%v is negative", subtotal))
	}
	o.subtotal = subtotal
	return nil
}
