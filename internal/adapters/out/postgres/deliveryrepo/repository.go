package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly scheduled delivery, cascading the initial history entry.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery together with appended history and
// feedback rows.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// FullSaveAssociations persists newly appended history and feedback rows
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID with its full history and feedback.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getOne(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByTrackingNumber retrieves a delivery by its customer-facing identifier.
func (r *GormDeliveryRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (*delivery.Delivery, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	return r.getOne(ctx, "tracking_number = ?", trackingNumber, trackingNumber)
}

// GetByOrderID retrieves the delivery bound to an order.
func (r *GormDeliveryRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return r.getOne(ctx, "order_id = ?", orderID.Bytes(), orderID.String())
}

// GetPendingScheduledBefore retrieves PENDING deliveries with a scheduled
// date before the cutoff, for the reminder sweep.
func (r *GormDeliveryRepository) GetPendingScheduledBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at") }).
		Preload("Feedback").
		Where("status = ? AND scheduled_date < ?", delivery.Pending.String(), cutoff).
		Order("scheduled_date").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func (r *GormDeliveryRepository) getOne(
	ctx context.Context,
	condition string,
	value any,
	lookup string,
) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("recorded_at") }).
		Preload("Feedback", func(db *gorm.DB) *gorm.DB { return db.Order("submitted_at") }).
		First(&dto, condition, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", lookup)
		}
		return nil, err
	}

	return toDomain(dto)
}
