package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order events outside the process.
// It is called after commit; a failure never undoes the stored change.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
