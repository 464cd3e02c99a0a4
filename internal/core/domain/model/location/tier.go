package location

import (
	"householdplanet/internal/pkg/errs"
)

const (
	minTier = 1
	maxTier = 4
)

// Tier is a pricing bucket grouping delivery locations by cost and distance.
// Valid tiers are 1 through 4, tier 1 being the cheapest inner-city band.
type Tier int

// NewTier creates a validated Tier.
// Returns ValueIsOutOfRangeError for values outside [1, 4].
func NewTier(value int) (Tier, error) {
	if value < minTier || value > maxTier {
		return 0, errs.NewValueIsOutOfRangeError("tier", value, minTier, maxTier)
	}
	return Tier(value), nil
}

// Validate checks that the tier lies within the supported range.
// The zero value is invalid.
func (t Tier) Validate() error {
	if t < minTier || t > maxTier {
		return errs.NewValueIsOutOfRangeError("tier", int(t), minTier, maxTier)
	}
	return nil
}

// Value returns the tier as a plain int for persistence and display.
func (t Tier) Value() int {
	return int(t)
}
