package queries

import (
	"errors"

	"householdplanet/internal/pkg/guard"
)

var ErrGetDeliveryAnalyticsQueryIsNotConstructed = errors.New(
	"GetDeliveryAnalyticsQuery must be created via NewGetDeliveryAnalyticsQuery constructor",
)

// GetDeliveryAnalyticsQuery retrieves operational delivery metrics for the
// admin dashboard: volume by status, the success rate and average customer
// satisfaction.
type GetDeliveryAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryAnalyticsQuery creates a parameterless analytics query.
func NewGetDeliveryAnalyticsQuery() GetDeliveryAnalyticsQuery {
	return GetDeliveryAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryAnalyticsQueryIsNotConstructed)
}

// GetDeliveryAnalyticsQueryResponse aggregates delivery performance metrics.
// SuccessRate is a percentage of completed deliveries over all deliveries,
// zero when there are none. AverageRating is zero when no feedback exists.
type GetDeliveryAnalyticsQueryResponse struct {
	TotalDeliveries  int
	CountsByStatus   map[string]int
	SuccessRate      float64
	AverageRating    float64
	FeedbackCount    int
	TotalReschedules int
}
