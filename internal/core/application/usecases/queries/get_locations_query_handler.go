package queries

import (
	"context"

	"householdplanet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLocationsQueryHandler retrieves the active delivery catalog from the
// database. Uses direct SQL for read performance in the CQRS pattern.
type GetLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetLocationsQueryHandler(db *gorm.DB) GetLocationsQueryHandler {
	return GetLocationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active catalog entries.
// Results are sorted by tier, then name, so cheaper zones list first.
func (h GetLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetLocationsQuery,
) ([]GetLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]GetLocationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			tier,
			price,
			description,
			estimated_days,
			express_available,
			express_price
		FROM locations
		WHERE is_active = TRUE
		ORDER BY tier, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var loc GetLocationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&loc.Name,
			&loc.Tier,
			&loc.Price,
			&loc.Description,
			&loc.EstimatedDays,
			&loc.ExpressAvailable,
			&loc.ExpressPrice,
		)
		if err != nil {
			return nil, err
		}

		locationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		loc.ID = locationID
		locations = append(locations, loc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
