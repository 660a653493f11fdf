// Package orderrepo persists order aggregates in the ordenes table.
package orderrepo

import (
	"time"

	"restaurant/internal/adapters/out/postgres/customerrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row shape of ordenes.
//
// The belongs-to Customer association exists only to have AutoMigrate emit
// the cliente_id foreign key; it is never loaded or saved. The composite
// index serves the per-customer listing ordered by creation time.
type OrderDTO struct {
	ID         uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID                 `gorm:"column:cliente_id;type:uuid;not null;index:idx_ordenes_cliente_creado,priority:1"`
	Customer   *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	DishName   string                    `gorm:"column:platillo_nombre;not null"`
	Notes      *string                   `gorm:"column:notes"`
	Status     string                    `gorm:"column:estado;not null;default:pending;check:chk_ordenes_estado,estado IN ('pending','preparing','delivered')"`
	CreatedAt  time.Time                 `gorm:"column:creado;not null;default:CURRENT_TIMESTAMP;index:idx_ordenes_cliente_creado,priority:2"`
}

func (OrderDTO) TableName() string {
	return "ordenes"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		DishName:   aggregate.DishName(),
		Notes:      aggregate.Notes(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, dto.DishName, dto.Notes, order.Status(dto.Status), dto.CreatedAt)
}
