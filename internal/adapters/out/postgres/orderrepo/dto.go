// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to a relational table indexed by status so the
// board tabs can be read efficiently. CreatedAt preserves insertion order for
// board listings.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName       string
	ItemDescription    string
	DeliveryAddress    string
	Phone              string
	SpecialInstruction string
	PrepTimeMinutes    *int
	Status             int       `gorm:"index"`
	CreatedAt          time.Time `gorm:"autoCreateTime;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerName:       aggregate.CustomerName(),
		ItemDescription:    aggregate.ItemDescription(),
		DeliveryAddress:    aggregate.DeliveryAddress(),
		Phone:              aggregate.Phone(),
		SpecialInstruction: aggregate.SpecialInstruction(),
		PrepTimeMinutes:    aggregate.PrepTimeMinutes(),
		Status:             int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and preparation time
// using RestoreOrder, which rejects corrupt rows.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.ItemDescription,
		dto.DeliveryAddress,
		dto.Phone,
		dto.SpecialInstruction,
		order.Status(dto.Status),
		dto.PrepTimeMinutes,
	)
}
