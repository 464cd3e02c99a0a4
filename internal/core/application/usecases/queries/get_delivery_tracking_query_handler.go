package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"householdplanet/internal/core/domain/services"
	"householdplanet/internal/core/ports"
	"householdplanet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryTrackingQueryHandler serves the public tracking endpoint.
// Tracking is the hottest read path, so lookups go through a cache-aside
// snapshot first; the database is only hit on a miss, and cache failures
// degrade to a plain database read.
type GetDeliveryTrackingQueryHandler struct {
	db         *gorm.DB
	cache      ports.TrackingCache
	calculator services.ShippingCalculator
	logger     *slog.Logger
}

// NewGetDeliveryTrackingQueryHandler creates a handler for tracking lookups.
func NewGetDeliveryTrackingQueryHandler(
	db *gorm.DB,
	cache ports.TrackingCache,
	logger *slog.Logger,
) GetDeliveryTrackingQueryHandler {
	return GetDeliveryTrackingQueryHandler{
		db:         db,
		cache:      cache,
		calculator: services.NewShippingCalculator(),
		logger:     logger.With("component", "get_delivery_tracking_handler"),
	}
}

// Handle executes the tracking lookup.
// Returns ObjectNotFound when the tracking number is unknown.
func (h GetDeliveryTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTrackingQuery,
) (*ports.TrackingSnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cached, err := h.cache.Get(ctx, query.TrackingNumber())
	if err != nil {
		h.logger.WarnContext(ctx, "Tracking cache read failed",
			"tracking_number", query.TrackingNumber(), "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	snapshot, err := h.loadSnapshot(ctx, query.TrackingNumber())
	if err != nil {
		return nil, err
	}

	if cacheErr := h.cache.Set(ctx, snapshot); cacheErr != nil {
		h.logger.WarnContext(ctx, "Tracking cache write failed",
			"tracking_number", query.TrackingNumber(), "error", cacheErr)
	}

	return snapshot, nil
}

func (h GetDeliveryTrackingQueryHandler) loadSnapshot(
	ctx context.Context,
	trackingNumber string,
) (*ports.TrackingSnapshot, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.tracking_number,
			d.status,
			d.scheduled_date,
			d.time_slot,
			d.reschedule_count,
			d.failure_reason,
			d.photo_proof,
			o.customer_name,
			o.location_name
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.tracking_number = ?
	`, trackingNumber).Row()

	var snapshot ports.TrackingSnapshot
	err := row.Scan(
		&snapshot.TrackingNumber,
		&snapshot.Status,
		&snapshot.ScheduledDate,
		&snapshot.TimeSlot,
		&snapshot.RescheduleCount,
		&snapshot.FailureReason,
		&snapshot.PhotoProof,
		&snapshot.CustomerName,
		&snapshot.LocationName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
	}
	if err != nil {
		return nil, err
	}

	snapshot.EstimatedDelivery = h.calculator.EstimateDeliveryDate(
		snapshot.ScheduledDate, snapshot.LocationName,
	)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			notes,
			recorded_at
		FROM delivery_status_history
		WHERE delivery_id = (SELECT id FROM deliveries WHERE tracking_number = ?)
		ORDER BY recorded_at
	`, trackingNumber).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot.History = make([]ports.TrackingHistoryEntry, 0)
	for rows.Next() {
		var entry ports.TrackingHistoryEntry
		var recordedAt time.Time

		if err = rows.Scan(&entry.Status, &entry.Notes, &recordedAt); err != nil {
			return nil, err
		}
		entry.Timestamp = recordedAt
		snapshot.History = append(snapshot.History, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
