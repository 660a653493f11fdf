// Package ports defines the contracts between the restaurant core and its
// adapters: repositories, the unit of work, and the event publisher.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a newly registered customer.
	// Fails with errs.ObjectAlreadyExistsError (param "email") when the email
	// is already registered. The check is the store's unique index, not a lookup.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by identifier.
	// Fails with errs.ObjectNotFoundError (param "customer") when absent.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
