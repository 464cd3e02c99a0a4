package ports

import (
	"context"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for placed orders.
// The delivery service reads orders to validate scheduling and resolve
// shipping costs; it never mutates them beyond registration.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns ObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
