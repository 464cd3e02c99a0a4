package location

import (
	"errors"
	"fmt"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"
)

var (
	// ErrLocationIsNotConstructed is returned when a Location instance was not
	// created through NewLocation or RestoreLocation.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

	// ErrExpressPriceIsRequired is returned when express delivery is enabled
	// without a configured express price.
	ErrExpressPriceIsRequired = errors.New("express price is required when express delivery is available")
)

// Location is the aggregate root for a named delivery destination in the
// catalog. Each location carries a pricing tier, a standard price, an optional
// express price, and an estimated transit time in days.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Tier must be within [1, 4]
//   - Standard price must be positive
//   - An express-enabled location must have a positive express price
//   - Can only be created through NewLocation or RestoreLocation
//
// Locations referenced by orders are never hard-deleted; Deactivate performs
// a soft removal from the active catalog.
type Location struct {
	id               kernel.UUID
	name             string
	tier             Tier
	price            float64
	description      string
	estimatedDays    int
	expressAvailable bool
	expressPrice     *float64
	isActive         bool

	isConstructed bool
}

// NewLocation creates a new active catalog entry with validation.
func NewLocation(
	id kernel.UUID,
	name string,
	tier Tier,
	price float64,
	description string,
	estimatedDays int,
	expressAvailable bool,
	expressPrice *float64,
) (*Location, error) {
	loc := &Location{
		description:   description,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
		loc.setTier(tier),
		loc.setPrice(price),
		loc.setEstimatedDays(estimatedDays),
		loc.setExpress(expressAvailable, expressPrice),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// RestoreLocation reconstructs a catalog entry from persistence, including its
// active flag. Validation rules match NewLocation.
func RestoreLocation(
	id kernel.UUID,
	name string,
	tier Tier,
	price float64,
	description string,
	estimatedDays int,
	expressAvailable bool,
	expressPrice *float64,
	isActive bool,
) (*Location, error) {
	loc, err := NewLocation(id, name, tier, price, description, estimatedDays, expressAvailable, expressPrice)
	if err != nil {
		return nil, err
	}

	loc.isActive = isActive
	return loc, nil
}

// Validate ensures the Location instance was properly constructed.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the unique destination name.
func (l *Location) Name() string {
	return l.name
}

// Tier returns the pricing tier.
func (l *Location) Tier() Tier {
	return l.tier
}

// Price returns the standard delivery price.
func (l *Location) Price() float64 {
	return l.price
}

// Description returns the optional human-readable description.
func (l *Location) Description() string {
	return l.description
}

// EstimatedDays returns the configured transit estimate in days.
func (l *Location) EstimatedDays() int {
	return l.estimatedDays
}

// ExpressAvailable reports whether express delivery is offered.
func (l *Location) ExpressAvailable() bool {
	return l.expressAvailable
}

// ExpressPrice returns the express price, or nil when not configured.
func (l *Location) ExpressPrice() *float64 {
	return l.expressPrice
}

// IsActive reports whether the location is part of the active catalog.
func (l *Location) IsActive() bool {
	return l.isActive
}

// EffectivePrice resolves the price to charge for this location.
// The express price applies only when express is requested, offered, and
// configured; in every other case the standard price is returned. The boolean
// reports whether the express rate was actually applied. Falling back to the
// standard price instead of failing keeps checkout from hard-erroring on
// locations without an express option.
func (l *Location) EffectivePrice(express bool) (float64, bool) {
	if express && l.expressAvailable && l.expressPrice != nil {
		return *l.expressPrice, true
	}
	return l.price, false
}

// Deactivate soft-removes the location from the active catalog.
// Existing orders keep referencing it.
func (l *Location) Deactivate() {
	l.isActive = false
}

// Activate returns the location to the active catalog.
func (l *Location) Activate() {
	l.isActive = true
}

// UpdatePricing replaces the price configuration of the location.
func (l *Location) UpdatePricing(price float64, expressAvailable bool, expressPrice *float64) error {
	if err := l.setPrice(price); err != nil {
		return err
	}
	return l.setExpress(expressAvailable, expressPrice)
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Location) setTier(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	l.tier = tier
	return nil
}

func (l *Location) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	l.price = price
	return nil
}

func (l *Location) setEstimatedDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDays", fmt.Errorf("%d is not greater than 0", days))
	}
	l.estimatedDays = days
	return nil
}

func (l *Location) setExpress(available bool, price *float64) error {
	if available {
		if price == nil {
			return ErrExpressPriceIsRequired
		}
		if *price <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("expressPrice", fmt.Errorf("%v is not greater than 0", *price))
		}
	}
	l.expressAvailable = available
	l.expressPrice = price
	return nil
}
