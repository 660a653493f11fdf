package errs

import (
	"errors"
	"fmt"
)

var ErrTransitionIsNotAllowed = errors.New("transition is not allowed")

// TransitionIsNotAllowedError reports a state change that the active
// lifecycle rules reject. The value itself is valid, the move is not.
type TransitionIsNotAllowedError struct {
	ParamName string
	From      any
	To        any
}

func NewTransitionIsNotAllowedError(paramName string, from, to any) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{
		ParamName: paramName,
		From:      from,
		To:        to,
	}
}

func (e *TransitionIsNotAllowedError) Error() string {
	return fmt.Sprintf("%s: %s from %s to %s", ErrTransitionIsNotAllowed, e.ParamName, sanitize(e.From), sanitize(e.To))
}

func (e *TransitionIsNotAllowedError) Unwrap() error {
	return ErrTransitionIsNotAllowed
}
