package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/order-notifier/internal/channel"
	"github.com/example/order-notifier/internal/channel/email"
	"github.com/example/order-notifier/internal/channel/sms"
	"github.com/example/order-notifier/internal/dispatch"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := dispatch.NewRegistry(email.Name)
	sender := email.New(zerolog.Nop(), email.WithSink(&bytes.Buffer{}))

	if err := reg.Register(sender); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	got, err := reg.Lookup(email.Name)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if got != channel.Sender(sender) {
		t.Fatalf("Lookup returned a different sender")
	}
}

func TestLookupUnknown(t *testing.T) {
	reg := dispatch.NewRegistry(email.Name)

	if _, err := reg.Lookup("pigeon"); !errors.Is(err, channel.ErrUnknownChannel) {
		t.Fatalf("expected ErrUnknownChannel, got %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := dispatch.NewRegistry(email.Name)

	first := email.New(zerolog.Nop(), email.WithSink(&bytes.Buffer{}))
	if err := reg.Register(first); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	second := email.New(zerolog.Nop(), email.WithSink(&bytes.Buffer{}))
	if err := reg.Register(second); !errors.Is(err, channel.ErrDuplicateChannel) {
		t.Fatalf("expected ErrDuplicateChannel, got %v", err)
	}

	// The original target must survive the rejected registration.
	got, err := reg.Lookup(email.Name)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if got != channel.Sender(first) {
		t.Fatalf("duplicate registration replaced the original sender")
	}
}

func TestRegisterNil(t *testing.T) {
	reg := dispatch.NewRegistry(email.Name)

	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil sender")
	}
}

func TestDefaultResolution(t *testing.T) {
	reg := dispatch.NewRegistry(sms.Name)

	if _, err := reg.Default(); !errors.Is(err, channel.ErrUnknownChannel) {
		t.Fatalf("expected ErrUnknownChannel before registration, got %v", err)
	}

	sender := sms.New(zerolog.Nop(), sms.WithSink(&bytes.Buffer{}))
	if err := reg.Register(sender); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	got, err := reg.Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	if got.Channel() != sms.Name {
		t.Fatalf("Default resolved %q, want %q", got.Channel(), sms.Name)
	}
	if reg.DefaultName() != sms.Name {
		t.Fatalf("DefaultName() = %q, want %q", reg.DefaultName(), sms.Name)
	}
}

func TestChannelsSorted(t *testing.T) {
	reg := dispatch.NewRegistry(email.Name)

	if err := reg.Register(sms.New(zerolog.Nop(), sms.WithSink(&bytes.Buffer{}))); err != nil {
		t.Fatalf("Register sms returned error: %v", err)
	}
	if err := reg.Register(email.New(zerolog.Nop(), email.WithSink(&bytes.Buffer{}))); err != nil {
		t.Fatalf("Register email returned error: %v", err)
	}

	if got, want := reg.Channels(), []string{"email", "sms"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Channels() = %v, want %v", got, want)
	}
}

func TestRegisteredSendersShareResultShape(t *testing.T) {
	var buf bytes.Buffer
	reg := dispatch.NewRegistry(email.Name)

	if err := reg.Register(email.New(zerolog.Nop(), email.WithSink(&buf))); err != nil {
		t.Fatalf("Register email returned error: %v", err)
	}
	if err := reg.Register(sms.New(zerolog.Nop(), sms.WithSink(&buf))); err != nil {
		t.Fatalf("Register sms returned error: %v", err)
	}

	for _, name := range reg.Channels() {
		sender, err := reg.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", name, err)
		}
		if err := sender.Send(context.Background(), "probe"); err != nil {
			t.Fatalf("sender %q failed where its peers succeed: %v", name, err)
		}
	}
}
