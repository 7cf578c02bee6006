package email_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/order-notifier/internal/channel"
	"github.com/example/order-notifier/internal/channel/email"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSendWritesConfirmationLine(t *testing.T) {
	var buf bytes.Buffer
	sender := email.New(zerolog.Nop(), email.WithSink(&buf))

	if err := sender.Send(context.Background(), "Order #101 confirmed!"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if got, want := buf.String(), "Sending email: Order #101 confirmed!\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSendNilSink(t *testing.T) {
	sender := email.New(zerolog.Nop(), email.WithSink(nil))

	err := sender.Send(context.Background(), "Order #101 confirmed!")

	var delivery *channel.DeliveryError
	if !errors.As(err, &delivery) {
		t.Fatalf("expected *channel.DeliveryError, got %v", err)
	}
	if delivery.Channel != email.Name || delivery.Reason != "sink unavailable" {
		t.Fatalf("unexpected delivery error: %+v", delivery)
	}
}

func TestSendWriteFailure(t *testing.T) {
	sender := email.New(zerolog.Nop(), email.WithSink(failingWriter{}))

	err := sender.Send(context.Background(), "Order #101 confirmed!")

	var delivery *channel.DeliveryError
	if !errors.As(err, &delivery) {
		t.Fatalf("expected *channel.DeliveryError, got %v", err)
	}
	if delivery.Reason != "sink unavailable" {
		t.Fatalf("unexpected reason: %q", delivery.Reason)
	}
}

func TestSendCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := email.New(zerolog.Nop(), email.WithSink(io.Discard))

	if err := sender.Send(ctx, "Order #101 confirmed!"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestChannelName(t *testing.T) {
	if got := email.New(zerolog.Nop()).Channel(); got != "email" {
		t.Fatalf("Channel() = %q, want %q", got, "email")
	}
}
