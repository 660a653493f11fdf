package errs

import (
	"errors"
	"fmt"
)

var ErrStoreUnavailable = errors.New("store is unavailable")

// StoreUnavailableError wraps connectivity failures of the backing store.
// The cause stays reachable through errors.As on the Cause field only.
type StoreUnavailableError struct {
	Cause error
}

func NewStoreUnavailableError(cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrStoreUnavailable, e.Cause)
	}
	return ErrStoreUnavailable.Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
