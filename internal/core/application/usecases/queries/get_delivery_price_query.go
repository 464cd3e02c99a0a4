package queries

import (
	"errors"

	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrGetDeliveryPriceQueryIsNotConstructed = errors.New(
	"GetDeliveryPriceQuery must be created via NewGetDeliveryPriceQuery constructor",
)

// GetDeliveryPriceQuery resolves the shipping cost for an order before it is
// placed. The quote covers the location price, the express surcharge and any
// bulk discount.
type GetDeliveryPriceQuery struct { //nolint:recvcheck //using for validation
	locationName string
	itemCount    int
	subtotal     float64
	express      bool

	guard guard.ConstructorGuard
}

// NewGetDeliveryPriceQuery creates a pricing query for a prospective order.
func NewGetDeliveryPriceQuery(
	locationName string,
	itemCount int,
	subtotal float64,
	express bool,
) (GetDeliveryPriceQuery, error) {
	q := GetDeliveryPriceQuery{
		express: express,
		guard:   guard.NewConstructorGuard(),
	}

	if locationName == "" {
		return GetDeliveryPriceQuery{}, errs.NewValueIsRequiredError("locationName")
	}
	q.locationName = locationName

	if itemCount <= 0 {
		return GetDeliveryPriceQuery{}, errs.NewValueIsInvalidError("itemCount")
	}
	q.itemCount = itemCount

	if subtotal < 0 {
		return GetDeliveryPriceQuery{}, errs.NewValueIsInvalidError("subtotal")
	}
	q.subtotal = subtotal

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPriceQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPriceQueryIsNotConstructed)
}

// LocationName returns the destination's catalog name.
func (q GetDeliveryPriceQuery) LocationName() string { return q.locationName }

// ItemCount returns the number of items in the prospective order.
func (q GetDeliveryPriceQuery) ItemCount() int { return q.itemCount }

// Subtotal returns the order value before shipping.
func (q GetDeliveryPriceQuery) Subtotal() float64 { return q.subtotal }

// Express reports whether express delivery was requested.
func (q GetDeliveryPriceQuery) Express() bool { return q.express }

// GetDeliveryPriceQueryResponse is the resolved shipping quote.
type GetDeliveryPriceQueryResponse struct {
	LocationName   string
	Subtotal       float64
	DeliveryCost   float64
	ExpressApplied bool
	DiscountRate   float64
	DiscountAmount float64
	Total          float64
	EstimatedDays  int
}
