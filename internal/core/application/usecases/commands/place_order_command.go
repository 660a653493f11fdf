package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer ordering one dish.
//
// Example:
//
//	notes := "extra salsa"
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, "Taco", &notes)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, time.Now)
//	o, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	dishName   string
	notes      *string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the identifiers and dish name. Notes are
// optional; nil means none were given, which is not the same as "".
func NewPlaceOrderCommand(orderID, customerID kernel.UUID, dishName string, notes *string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDishName(dishName),
	); err != nil {
		return PlaceOrderCommand{}, err
	}
	if notes != nil {
		n := *notes
		cmd.notes = &n
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c PlaceOrderCommand) DishName() string {
	return c.dishName
}

func (c PlaceOrderCommand) Notes() *string {
	return c.notes
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setDishName(dishName string) error {
	if dishName == "" {
		return errs.NewValueIsRequiredError("dishName")
	}
	c.dishName = dishName
	return nil
}
