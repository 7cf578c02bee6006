package email

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/example/order-notifier/internal/channel"
)

// Name is the registry name the email sender answers to.
const Name = "email"

// Option customises the behaviour of the sender at construction time.
type Option func(*Sender)

// WithSink overrides the output sink. Passing nil marks the sink unavailable,
// which is useful when exercising delivery failures in tests.
func WithSink(w io.Writer) Option {
	return func(s *Sender) {
		s.sink = w
	}
}

// Sender emits order confirmations on the email channel. It is stateless
// after construction and safe for read-only sharing across the process.
type Sender struct {
	logger zerolog.Logger
	sink   io.Writer
}

// New constructs an email sender writing to stdout unless overridden.
func New(logger zerolog.Logger, opts ...Option) *Sender {
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}

	s := &Sender{
		logger: logger,
		sink:   os.Stdout,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Channel returns the sender's registry name.
func (s *Sender) Channel() string { return Name }

// Send writes one confirmation line to the sink. It fails with a
// *channel.DeliveryError when the sink is missing or rejects the write.
func (s *Sender) Send(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.sink == nil {
		return &channel.DeliveryError{Channel: Name, Reason: "sink unavailable"}
	}

	if _, err := fmt.Fprintf(s.sink, "Sending %s: %s\n", Name, message); err != nil {
		s.logger.Error().
			Err(err).
			Str("channel", Name).
			Msg("sink write failed")
		return &channel.DeliveryError{Channel: Name, Reason: "sink unavailable"}
	}

	s.logger.Debug().
		Str("channel", Name).
		Msg("confirmation delivered")
	return nil
}
