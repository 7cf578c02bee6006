package channel

import "context"

// Sender defines the behaviour required from delivery channels. Senders are
// responsible for emitting a confirmation message on their medium and
// reporting failures through the shared error taxonomy, so callers can swap
// one channel for another without observing a different result shape.
type Sender interface {
	// Send delivers the message, returning nil on success or a
	// *DeliveryError when the channel cannot complete its side effect.
	Send(ctx context.Context, message string) error

	// Channel returns the registry name this sender is addressed by.
	Channel() string
}
