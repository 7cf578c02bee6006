package dispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/order-notifier/internal/channel"
	"github.com/example/order-notifier/internal/models"
)

// Option customises dispatcher behaviour.
type Option func(*Dispatcher)

// WithClock overrides the clock used for notification timestamps, useful for
// deterministic unit tests.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithDispatchIDs overrides the dispatch identifier source.
func WithDispatchIDs(newID func() string) Option {
	return func(d *Dispatcher) {
		if newID != nil {
			d.newID = newID
		}
	}
}

// Dispatcher builds the confirmation message for an order and routes it to a
// chosen or default channel sender. It performs exactly one send per call and
// propagates the sender's result unchanged.
type Dispatcher struct {
	logger   zerolog.Logger
	registry *Registry
	now      func() time.Time
	newID    func() string
}

// New constructs a dispatcher over the supplied registry.
func New(registry *Registry, logger zerolog.Logger, opts ...Option) (*Dispatcher, error) {
	if registry == nil {
		return nil, errors.New("dispatch: registry dependency is required")
	}
	if reflect.ValueOf(logger).IsZero() {
		logger = zerolog.Nop()
	}

	d := &Dispatcher{
		logger:   logger,
		registry: registry,
		now:      time.Now,
		newID:    uuid.NewString,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	return d, nil
}

// ConfirmationMessage builds the confirmation text for an order. The message
// depends only on the order identifier, never on the selected channel.
func ConfirmationMessage(order models.Order) string {
	return fmt.Sprintf("Order #%s confirmed!", order.ID)
}

// Notify dispatches the order's confirmation. When a channel name is supplied
// it must be registered; an unknown name fails before any send happens and
// never falls back to the default. Without a name the registry default is
// used. The sender's error, if any, is returned as-is.
func (d *Dispatcher) Notify(ctx context.Context, order models.Order, channels ...string) (*models.Notification, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	sender, err := d.resolve(channels)
	if err != nil {
		return nil, err
	}

	dispatchID := d.newID()
	message := ConfirmationMessage(order)

	log := d.logger.With().
		Str("dispatch_id", dispatchID).
		Str("order_id", order.ID).
		Str("channel", sender.Channel()).
		Logger()

	if err := sender.Send(ctx, message); err != nil {
		log.Error().Err(err).Msg("confirmation dispatch failed")
		return nil, err
	}

	log.Info().Msg("confirmation dispatched")

	return &models.Notification{
		DispatchID: dispatchID,
		OrderID:    order.ID,
		Channel:    sender.Channel(),
		Message:    message,
		SentAt:     d.now(),
	}, nil
}

func (d *Dispatcher) resolve(channels []string) (channel.Sender, error) {
	if len(channels) == 0 {
		return d.registry.Default()
	}
	if len(channels) > 1 {
		return nil, fmt.Errorf("dispatch: at most one channel may be supplied, got %d", len(channels))
	}
	return d.registry.Lookup(channels[0])
}
