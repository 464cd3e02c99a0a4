// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are registered once and read by the delivery
// workflow; the delivery service never mutates them afterwards.
package orderrepo

import (
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	LocationName string    `gorm:"type:varchar(255);not null"`
	ItemCount    int       `gorm:"type:int;not null"`
	Subtotal     float64   `gorm:"type:numeric;not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerName: o.CustomerName(),
		Phone:        o.Phone(),
		LocationName: o.LocationName(),
		ItemCount:    o.ItemCount(),
		Subtotal:     o.Subtotal(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.Phone,
		dto.LocationName,
		dto.ItemCount,
		dto.Subtotal,
	)
}
