package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a dish requested by a customer. It is the aggregate root of the
// order ledger.
//
// Order follows these invariants:
//   - id and customerID are valid identifiers and never change
//   - dishName is non-empty
//   - notes is optional; nil and a pointer to "" are different values
//   - status is always one of AllowedStatuses
//   - createdAt is set once, in UTC, truncated to microseconds
//
// The customer reference is not checked here. The store rejects orders for
// unknown customers through its foreign key.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	dishName   string
	notes      *string
	status     Status
	createdAt  time.Time

	// events holds facts not yet handed to a publisher
	events []Event

	isConstructed bool
}

// NewOrder places a new order in Pending status and records EventPlaced.
//
// Example:
//
//	notes := "no onions"
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Taco", &notes, time.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // pending
func NewOrder(id, customerID kernel.UUID, dishName string, notes *string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDishName(dishName),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}
	o.notes = copyNotes(notes)

	o.record(EventPlaced, "", o.createdAt)
	return o, nil
}

// RestoreOrder rebuilds an order read from storage. No event is recorded.
func RestoreOrder(
	id, customerID kernel.UUID,
	dishName string,
	notes *string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDishName(dishName),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.notes = copyNotes(notes)
	o.status = status

	return o, nil
}

// Validate ensures the Order was built through one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) DishName() string {
	return o.dishName
}

// Notes returns a copy of the notes, or nil when none were given.
func (o *Order) Notes() *string {
	return copyNotes(o.notes)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to newStatus when both the value and the
// transition are accepted. On failure the order is left untouched.
//
// Errors:
//   - errs.ValueIsInvalidError when newStatus is not an allowed status
//   - errs.TransitionIsNotAllowedError when policy rejects current -> newStatus
//
// EventStatusChanged is recorded only when the status actually changes.
func (o *Order) ChangeStatus(newStatus Status, policy TransitionPolicy, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if err := policy.Check(o.status, newStatus); err != nil {
		return err
	}

	previous := o.status
	o.status = newStatus
	if previous != newStatus {
		o.record(EventStatusChanged, previous, at)
	}

	return nil
}

// Events returns the facts recorded since construction or the last ClearEvents.
func (o *Order) Events() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) record(eventType EventType, previous Status, at time.Time) {
	o.events = append(o.events, Event{
		ID:             kernel.NewUUID(),
		Type:           eventType,
		OrderID:        o.id,
		CustomerID:     o.customerID,
		Status:         o.status,
		PreviousStatus: previous,
		OccurredAt:     at.UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDishName(dishName string) error {
	if dishName == "" {
		return errs.NewValueIsRequiredError("dishName")
	}
	o.dishName = dishName
	return nil
}

// setCreatedAt stores the timestamp at the precision both supported stores keep.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC().Truncate(time.Microsecond)
	return nil
}

func copyNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	n := *notes
	return &n
}
