package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order.
	// Fails with errs.ObjectNotFoundError (param "customer") when the order
	// references a customer the store does not know.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	// Fails with errs.ObjectNotFoundError (param "order") when absent.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Fails with errs.ObjectNotFoundError (param "order") when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends, so concurrent status changes of one order serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
