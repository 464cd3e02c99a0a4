package queries

import (
	"errors"

	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrGetDeliveryTrackingQueryIsNotConstructed = errors.New(
	"GetDeliveryTrackingQuery must be created via NewGetDeliveryTrackingQuery constructor",
)

// GetDeliveryTrackingQuery retrieves the public tracking view of a delivery:
// its current status, schedule, estimate and full status history.
type GetDeliveryTrackingQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetDeliveryTrackingQuery creates a tracking lookup for a tracking number.
func NewGetDeliveryTrackingQuery(trackingNumber string) (GetDeliveryTrackingQuery, error) {
	q := GetDeliveryTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if trackingNumber == "" {
		return GetDeliveryTrackingQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	q.trackingNumber = trackingNumber

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the delivery's customer-facing identifier.
func (q GetDeliveryTrackingQuery) TrackingNumber() string { return q.trackingNumber }
