package commands

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
)

// RegisterCustomerCommandHandler adds customers to the directory.
//
// Email uniqueness is left to the store: the insert either succeeds or fails
// with errs.ObjectAlreadyExistsError, so two concurrent registrations of the
// same email can never both succeed.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the new customer and returns it.
func (h *RegisterCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone())
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

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
