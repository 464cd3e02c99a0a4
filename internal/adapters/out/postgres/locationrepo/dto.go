// Package locationrepo provides data transfer objects and mapping functions
// for delivery catalog persistence. Handles the conversion between the
// location aggregate and its database representation.
package locationrepo

import (
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for catalog entries.
// The name carries a unique index: the catalog is keyed by human-readable
// destination names and pricing lookups resolve by name.
type LocationDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Tier             int       `gorm:"type:int;not null"`
	Price            float64   `gorm:"type:numeric;not null"`
	Description      string    `gorm:"type:text"`
	EstimatedDays    int       `gorm:"type:int;not null"`
	ExpressAvailable bool      `gorm:"type:boolean;not null"`
	ExpressPrice     *float64  `gorm:"type:numeric"`
	IsActive         bool      `gorm:"type:boolean;not null;index"`
}

// TableName overrides GORM's default naming to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(loc *location.Location) LocationDTO {
	return LocationDTO{
		ID:               loc.ID().Bytes(),
		Name:             loc.Name(),
		Tier:             loc.Tier().Value(),
		Price:            loc.Price(),
		Description:      loc.Description(),
		EstimatedDays:    loc.EstimatedDays(),
		ExpressAvailable: loc.ExpressAvailable(),
		ExpressPrice:     loc.ExpressPrice(),
		IsActive:         loc.IsActive(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tier, err := location.NewTier(dto.Tier)
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(
		id,
		dto.Name,
		tier,
		dto.Price,
		dto.Description,
		dto.EstimatedDays,
		dto.ExpressAvailable,
		dto.ExpressPrice,
		dto.IsActive,
	)
}
