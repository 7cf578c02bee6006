package channel

import (
	"errors"
	"fmt"
)

// ErrUnknownChannel and ErrDuplicateChannel are sentinel errors the registry
// uses when classifying lookup and registration failures.
var (
	ErrUnknownChannel   = errors.New("unknown channel")
	ErrDuplicateChannel = errors.New("duplicate channel")
)

// WrapUnknown annotates an unknown-channel error with the requested name so
// callers can detect it with errors.Is while still seeing what was asked for.
func WrapUnknown(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}

// WrapDuplicate annotates a duplicate-registration error with the offending
// name.
func WrapDuplicate(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateChannel, name)
}

// DeliveryError reports that a sender could not perform its side effect. It
// is returned unchanged through the dispatcher, never recovered or retried.
type DeliveryError struct {
	Channel string
	Reason  string
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery failed: %s", e.Channel, e.Reason)
}
