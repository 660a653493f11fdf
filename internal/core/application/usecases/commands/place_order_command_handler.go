package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler records new orders in pending status.
//
// Whether the customer exists is decided by the store's foreign key inside
// the insert. An unknown customer surfaces as errs.ObjectNotFoundError with
// param "customer" and no row is created.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates the handler. now stamps createdAt;
// nil selects time.Now.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) PlaceOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle stores the order and returns it with its assigned status and creation time.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.DishName(), cmd.Notes(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
