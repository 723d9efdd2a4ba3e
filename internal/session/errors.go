package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition marks a caller contract violation. The
	// controller refuses the call and leaves its state unchanged.
	ErrInvalidTransition = errors.New("invalid transition")

	ErrNoMood = fmt.Errorf("%w: no mood selected", ErrInvalidTransition)
	ErrBusy   = fmt.Errorf("%w: selection already in progress", ErrInvalidTransition)
	ErrFailed = fmt.Errorf("%w: session has failed", ErrInvalidTransition)

	// ErrFault marks an unrecoverable error during selection.
	ErrFault = errors.New("selection fault")
)

// FaultError carries the cause of an unrecoverable selection failure.
type FaultError struct {
	Cause error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%v: %v", ErrFault, e.Cause)
}

func (e *FaultError) Unwrap() []error {
	return []error{ErrFault, e.Cause}
}
