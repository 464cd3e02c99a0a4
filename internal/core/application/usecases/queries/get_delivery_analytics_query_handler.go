package queries

import (
	"context"

	"householdplanet/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetDeliveryAnalyticsQueryHandler computes delivery metrics straight from
// the database. Aggregation happens in SQL; the handler only assembles the
// read model.
type GetDeliveryAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryAnalyticsQueryHandler creates a handler for analytics queries.
func NewGetDeliveryAnalyticsQueryHandler(db *gorm.DB) GetDeliveryAnalyticsQueryHandler {
	return GetDeliveryAnalyticsQueryHandler{db: db}
}

// Handle executes the analytics query.
func (h GetDeliveryAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryAnalyticsQuery,
) (GetDeliveryAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryAnalyticsQueryResponse{}, err
	}

	resp := GetDeliveryAnalyticsQueryResponse{
		CountsByStatus: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM deliveries
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDeliveryAnalyticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return GetDeliveryAnalyticsQueryResponse{}, err
		}
		resp.CountsByStatus[status] = count
		resp.TotalDeliveries += count
	}

	if err = rows.Err(); err != nil {
		return GetDeliveryAnalyticsQueryResponse{}, err
	}

	if resp.TotalDeliveries > 0 {
		delivered := resp.CountsByStatus[delivery.Delivered.String()]
		resp.SuccessRate = float64(delivered) / float64(resp.TotalDeliveries) * 100
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(reschedule_count), 0)
		FROM deliveries
	`).Row()
	if err = row.Scan(&resp.TotalReschedules); err != nil {
		return GetDeliveryAnalyticsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(AVG(rating), 0)
		FROM delivery_feedback
	`).Row()
	if err = row.Scan(&resp.FeedbackCount, &resp.AverageRating); err != nil {
		return GetDeliveryAnalyticsQueryResponse{}, err
	}

	return resp, nil
}
