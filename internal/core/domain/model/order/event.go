package order

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// EventType names a fact recorded by the order aggregate.
type EventType string

const (
	EventPlaced        EventType = "order.placed"
	EventStatusChanged EventType = "order.status_changed"
)

// Event is recorded by Order and published once the surrounding unit of work commits.
// PreviousStatus is empty for EventPlaced.
type Event struct {
	ID             kernel.UUID
	Type           EventType
	OrderID        kernel.UUID
	CustomerID     kernel.UUID
	Status         Status
	PreviousStatus Status
	OccurredAt     time.Time
}
