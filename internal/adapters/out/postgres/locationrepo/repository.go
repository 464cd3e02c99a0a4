package locationrepo

import (
	"context"
	"errors"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/location"
	"householdplanet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry to the database.
// The unique index on name rejects duplicate destinations.
func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
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

// Update saves an existing catalog entry to the database.
func (r *GormLocationRepository) Update(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a catalog entry by its unique destination name.
func (r *GormLocationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all catalog entries customers can currently select,
// ordered by tier then name.
func (r *GormLocationRepository) GetAllActive(ctx context.Context) ([]*location.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("tier, name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		loc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, nil
}
