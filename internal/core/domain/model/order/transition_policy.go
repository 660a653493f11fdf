package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// TransitionPolicy decides whether an order may move from one status to another.
type TransitionPolicy string

const (
	// Permissive accepts any allowed status at any time, including the current one.
	Permissive TransitionPolicy = "permissive"

	// ForwardOnly accepts pending -> preparing and preparing -> delivered only.
	ForwardOnly TransitionPolicy = "forward-only"
)

var forwardEdges = map[Status]Status{
	Pending:   Preparing,
	Preparing: Delivered,
}

// ParseTransitionPolicy reads a policy name from configuration. The empty
// string selects Permissive.
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch TransitionPolicy(s) {
	case "", Permissive:
		return Permissive, nil
	case ForwardOnly:
		return ForwardOnly, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"transition policy",
			fmt.Errorf("%q is not one of %s, %s", s, Permissive, ForwardOnly),
		)
	}
}

// Check returns nil when the move is accepted and a TransitionIsNotAllowedError otherwise.
// Both statuses are expected to be valid already.
func (p TransitionPolicy) Check(from, to Status) error {
	if p != ForwardOnly {
		return nil
	}
	if next, ok := forwardEdges[from]; ok && next == to {
		return nil
	}
	return errs.NewTransitionIsNotAllowedError("status", from, to)
}

func (p TransitionPolicy) String() string {
	return string(p)
}
