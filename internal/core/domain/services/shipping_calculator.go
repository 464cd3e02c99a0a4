package services

import (
	"strings"
	"time"

	"householdplanet/internal/core/domain/model/location"
)

// Bulk discount thresholds, checked in descending order; first match wins.
const (
	bulkItemThreshold     = 10
	bulkItemDiscount      = 0.15
	midItemThreshold      = 5
	midItemDiscount       = 0.10
	subtotalThreshold     = 10000.0
	subtotalDiscount      = 0.05
	cbdTransitDays        = 1
	defaultTransitDays    = 2
	cbdLocationNameMarker = "CBD"
)

// CostBreakdown is the result of resolving shipping for an order.
type CostBreakdown struct {
	// Subtotal is the order value before shipping and discounts.
	Subtotal float64

	// DeliveryCost is the resolved location price, express or standard.
	DeliveryCost float64

	// ExpressApplied reports whether the express rate was charged.
	// False when express was requested but the location does not offer it.
	ExpressApplied bool

	// DiscountRate is the bulk discount fraction applied to the subtotal.
	DiscountRate float64

	// DiscountAmount is the absolute discount off the subtotal.
	DiscountAmount float64

	// Total is subtotal minus discount plus delivery cost.
	Total float64
}

// ShippingCalculator is a domain service that resolves delivery pricing for
// an order against a catalog location.
//
// Business rules:
//   - Express pricing applies only when the location offers it and has an
//     express price configured; otherwise the standard price is used silently
//   - Bulk discount is computed independently of the delivery price, checked
//     in descending order, first match wins, never cumulative
//   - The delivery estimate is a coarse heuristic keyed off the location name
type ShippingCalculator struct{}

// NewShippingCalculator creates a new ShippingCalculator instance.
func NewShippingCalculator() ShippingCalculator {
	return ShippingCalculator{}
}

// Calculate resolves the full cost breakdown for shipping an order of the
// given subtotal and item count to loc.
func (s ShippingCalculator) Calculate(
	loc *location.Location,
	subtotal float64,
	itemCount int,
	express bool,
) (CostBreakdown, error) {
	if err := loc.Validate(); err != nil {
		return CostBreakdown{}, err
	}

	deliveryCost, expressApplied := loc.EffectivePrice(express)
	rate := s.BulkDiscountRate(subtotal, itemCount)
	discount := subtotal * rate

	return CostBreakdown{
		Subtotal:       subtotal,
		DeliveryCost:   deliveryCost,
		ExpressApplied: expressApplied,
		DiscountRate:   rate,
		DiscountAmount: discount,
		Total:          subtotal - discount + deliveryCost,
	}, nil
}

// BulkDiscountRate returns the discount fraction for an order.
// 15% for 10+ items, 10% for 5+ items, 5% for a subtotal of 10000 or more,
// otherwise 0. Thresholds are checked in that order and only one applies.
func (s ShippingCalculator) BulkDiscountRate(subtotal float64, itemCount int) float64 {
	switch {
	case itemCount >= bulkItemThreshold:
		return bulkItemDiscount
	case itemCount >= midItemThreshold:
		return midItemDiscount
	case subtotal >= subtotalThreshold:
		return subtotalDiscount
	default:
		return 0
	}
}

// EstimateDeliveryDate derives the expected delivery date from the scheduled
// date: one day for central business district locations, two days otherwise.
func (s ShippingCalculator) EstimateDeliveryDate(scheduled time.Time, locationName string) time.Time {
	if strings.Contains(locationName, cbdLocationNameMarker) {
		return scheduled.AddDate(0, 0, cbdTransitDays)
	}
	return scheduled.AddDate(0, 0, defaultTransitDays)
}
