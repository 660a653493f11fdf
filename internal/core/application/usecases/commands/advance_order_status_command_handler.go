package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler changes the status of an existing order.
//
// The order row is locked for the duration of the transaction, so two
// concurrent updates of the same order apply one after the other and the
// last to commit wins. Which moves are accepted depends on the policy.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
	now        func() time.Time
}

// NewAdvanceOrderStatusCommandHandler creates the handler. An empty policy
// behaves as order.Permissive; nil now selects time.Now.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
	now func() time.Time,
) AdvanceOrderStatusCommandHandler {
	if now == nil {
		now = time.Now
	}
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		now:        now,
	}
}

// Handle applies the new status and returns the updated order.
//
// Errors:
//   - errs.ObjectNotFoundError (param "order") when the order does not exist
//   - errs.TransitionIsNotAllowedError when the policy rejects the move
func (h *AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status(), h.policy, h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
