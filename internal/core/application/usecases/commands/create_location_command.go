package commands

import (
	"errors"

	"householdplanet/internal/core/domain/model/location"
	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand represents a request to add a destination to the
// delivery catalog. Admin-facing; seeded locations go through the same path.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	name             string
	tier             location.Tier
	price            float64
	description      string
	estimatedDays    int
	expressAvailable bool
	expressPrice     *float64

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a command to register a catalog entry.
// Tier and price rules match the domain aggregate; failing values are
// rejected here so invalid commands never reach a transaction.
func NewCreateLocationCommand(
	name string,
	tier int,
	price float64,
	description string,
	estimatedDays int,
	expressAvailable bool,
	expressPrice *float64,
) (CreateLocationCommand, error) {
	cmd := CreateLocationCommand{
		description:      description,
		expressAvailable: expressAvailable,
		expressPrice:     expressPrice,
		guard:            guard.NewConstructorGuard(),
	}

	locationTier, err := location.NewTier(tier)
	if err != nil {
		return CreateLocationCommand{}, err
	}
	cmd.tier = locationTier

	if name == "" {
		return CreateLocationCommand{}, errs.NewValueIsRequiredError("name")
	}
	cmd.name = name

	if price <= 0 {
		return CreateLocationCommand{}, errs.NewValueIsInvalidError("price")
	}
	cmd.price = price

	if estimatedDays <= 0 {
		return CreateLocationCommand{}, errs.NewValueIsInvalidError("estimatedDays")
	}
	cmd.estimatedDays = estimatedDays

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// Name returns the unique destination name.
func (c CreateLocationCommand) Name() string { return c.name }

// Tier returns the validated pricing tier.
func (c CreateLocationCommand) Tier() location.Tier { return c.tier }

// Price returns the standard delivery price.
func (c CreateLocationCommand) Price() float64 { return c.price }

// Description returns the optional description.
func (c CreateLocationCommand) Description() string { return c.description }

// EstimatedDays returns the transit estimate in days.
func (c CreateLocationCommand) EstimatedDays() int { return c.estimatedDays }

// ExpressAvailable reports whether express delivery is offered.
func (c CreateLocationCommand) ExpressAvailable() bool { return c.expressAvailable }

// ExpressPrice returns the express price, or nil when not configured.
func (c CreateLocationCommand) ExpressPrice() *float64 { return c.expressPrice }
