package kafka

import (
	"time"

	"restaurant/internal/core/domain/model/order"
)

// orderEventMessage is the JSON value of an order event message.
type orderEventMessage struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OrderID        string    `json:"order_id"`
	CustomerID     string    `json:"customer_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newOrderEventMessage(event order.Event) orderEventMessage {
	return orderEventMessage{
		EventID:        event.ID.String(),
		EventType:      string(event.Type),
		OrderID:        event.OrderID.String(),
		CustomerID:     event.CustomerID.String(),
		Status:         event.Status.String(),
		PreviousStatus: event.PreviousStatus.String(),
		OccurredAt:     event.OccurredAt.UTC(),
	}
}
