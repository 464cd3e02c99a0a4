package queries

import (
	"errors"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/guard"
)

var ErrGetLocationsQueryIsNotConstructed = errors.New(
	"GetLocationsQuery must be created via NewGetLocationsQuery constructor",
)

// GetLocationsQuery retrieves the active delivery catalog.
// Customers browse this list when choosing a destination at checkout.
type GetLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLocationsQuery creates a query to retrieve the active catalog.
// This is a parameterless query; deactivated locations are never returned.
func NewGetLocationsQuery() GetLocationsQuery {
	return GetLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationsQueryIsNotConstructed)
}

// GetLocationsQueryResponse is a catalog entry read model.
type GetLocationsQueryResponse struct {
	ID               kernel.UUID
	Name             string
	Tier             int
	Price            float64
	Description      string
	EstimatedDays    int
	ExpressAvailable bool
	ExpressPrice     *float64
}
