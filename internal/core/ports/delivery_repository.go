package ports

import (
	"context"
	"time"

	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Implementations persist the aggregate together with its status history and
// feedback entries.
type DeliveryRepository interface {
	// Add persists a newly scheduled delivery with its initial history entry.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists status changes, appended history and feedback.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByTrackingNumber retrieves a delivery by its customer-facing
	// tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery bound to an order.
	// Deliveries are 1:1 with orders.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetPendingScheduledBefore retrieves PENDING deliveries whose scheduled
	// date falls before the cutoff. Used by the reminder job.
	GetPendingScheduledBefore(ctx context.Context, cutoff time.Time) ([]*delivery.Delivery, error)
}
