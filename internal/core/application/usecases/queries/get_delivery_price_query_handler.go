package queries

import (
	"context"
	"database/sql"
	"errors"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/location"
	"householdplanet/internal/core/domain/services"
	"householdplanet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryPriceQueryHandler resolves shipping quotes.
// Loads the catalog entry and delegates the cost rules to the shipping
// calculator domain service.
type GetDeliveryPriceQueryHandler struct {
	db         *gorm.DB
	calculator services.ShippingCalculator
}

// NewGetDeliveryPriceQueryHandler creates a handler for pricing queries.
func NewGetDeliveryPriceQueryHandler(db *gorm.DB) GetDeliveryPriceQueryHandler {
	return GetDeliveryPriceQueryHandler{
		db:         db,
		calculator: services.NewShippingCalculator(),
	}
}

// Handle executes the pricing query.
// Returns ObjectNotFound when the destination is unknown or deactivated.
func (h GetDeliveryPriceQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPriceQuery,
) (GetDeliveryPriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryPriceQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE name = ? AND is_active = TRUE
	`, query.LocationName()).Row()

	var (
		id               uuid.UUID
		name             string
		tier             int
		price            float64
		description      string
		estimatedDays    int
		expressAvailable bool
		expressPrice     *float64
	)
	err := row.Scan(&id, &name, &tier, &price, &description, &estimatedDays, &expressAvailable, &expressPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryPriceQueryResponse{},
			errs.NewObjectNotFoundError("locationName", query.LocationName())
	}
	if err != nil {
		return GetDeliveryPriceQueryResponse{}, err
	}

	locationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDeliveryPriceQueryResponse{}, err
	}

	locationTier, err := location.NewTier(tier)
	if err != nil {
		return GetDeliveryPriceQueryResponse{}, err
	}

	loc, err := location.RestoreLocation(
		locationID, name, locationTier, price, description,
		estimatedDays, expressAvailable, expressPrice, true,
	)
	if err != nil {
		return GetDeliveryPriceQueryResponse{}, err
	}

	breakdown, err := h.calculator.Calculate(loc, query.Subtotal(), query.ItemCount(), query.Express())
	if err != nil {
		return GetDeliveryPriceQueryResponse{}, err
	}

	return GetDeliveryPriceQueryResponse{
		LocationName:   loc.Name(),
		Subtotal:       breakdown.Subtotal,
		DeliveryCost:   breakdown.DeliveryCost,
		ExpressApplied: breakdown.ExpressApplied,
		DiscountRate:   breakdown.DiscountRate,
		DiscountAmount: breakdown.DiscountAmount,
		Total:          breakdown.Total,
		EstimatedDays:  loc.EstimatedDays(),
	}, nil
}
