package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status is the lifecycle state of an order, persisted as its literal value.
//
//	pending ──> preparing ──> delivered
type Status string

const (
	// Pending is the only initial status.
	Pending Status = "pending"

	// Preparing means the kitchen is working on the dish.
	Preparing Status = "preparing"

	// Delivered is terminal under the forward-only policy.
	Delivered Status = "delivered"
)

// AllowedStatuses lists every valid status in lifecycle order.
func AllowedStatuses() []Status {
	return []Status{Pending, Preparing, Delivered}
}

// ParseStatus converts an external literal into a Status. Matching is exact:
// "Pending" or " pending" are rejected.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate rejects anything outside AllowedStatuses. The error lists the
// allowed values.
func (s Status) Validate() error {
	for _, allowed := range AllowedStatuses() {
		if s == allowed {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of %s", string(s), allowedList()),
	)
}

func (s Status) String() string {
	return string(s)
}

func allowedList() string {
	values := make([]string, 0, len(AllowedStatuses()))
	for _, s := range AllowedStatuses() {
		values = append(values, string(s))
	}
	return strings.Join(values, ", ")
}
