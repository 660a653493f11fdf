// Package customerrepo persists customer aggregates in the clientes table.
package customerrepo

import (
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row shape of clientes. The unique index on email is
// what makes registration race-free.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"column:nombre;not null"`
	Email string    `gorm:"column:email;not null;uniqueIndex:idx_clientes_email"`
	Phone string    `gorm:"column:telefono;not null"`
}

func (CustomerDTO) TableName() string {
	return "clientes"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Phone: aggregate.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone)
}
