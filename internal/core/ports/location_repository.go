package ports

import (
	"context"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for the delivery
// location catalog.
type LocationRepository interface {
	// Add persists a new catalog entry.
	// Location names are unique; adding a duplicate name fails.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes to an existing catalog entry, including
	// soft-deactivation.
	Update(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a catalog entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetByName retrieves a catalog entry by its exact name.
	// Used by the pricing resolver; unknown names return ObjectNotFound.
	GetByName(ctx context.Context, name string) (*location.Location, error)

	// GetAllActive retrieves the active catalog ordered by tier then name.
	GetAllActive(ctx context.Context) ([]*location.Location, error)
}
