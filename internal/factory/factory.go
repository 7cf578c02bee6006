package factory

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/example/order-notifier/internal/channel/email"
	"github.com/example/order-notifier/internal/channel/sms"
	"github.com/example/order-notifier/internal/config"
	"github.com/example/order-notifier/internal/dispatch"
)

// Email constructs the configured email sender, supporting console and
// discard sinks.
func Email(cfg config.ChannelConfig, logger zerolog.Logger) (*email.Sender, error) {
	sink, err := sinkFor(cfg.EmailBackend)
	if err != nil {
		return nil, fmt.Errorf("factory: email sender init: %w", err)
	}
	logger.Info().
		Str("channel", email.Name).
		Str("backend", cfg.EmailBackend).
		Msg("sender initialised")
	return email.New(logger, email.WithSink(sink)), nil
}

// SMS constructs the configured SMS sender.
func SMS(cfg config.ChannelConfig, logger zerolog.Logger) (*sms.Sender, error) {
	sink, err := sinkFor(cfg.SMSBackend)
	if err != nil {
		return nil, fmt.Errorf("factory: sms sender init: %w", err)
	}
	logger.Info().
		Str("channel", sms.Name).
		Str("backend", cfg.SMSBackend).
		Msg("sender initialised")
	return sms.New(logger, sms.WithSink(sink)), nil
}

// Registry assembles the dispatch registry from configuration, registering
// every supported channel and verifying the configured default resolves.
func Registry(cfg *config.Config, logger zerolog.Logger) (*dispatch.Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("factory: config is required")
	}

	emailSender, err := Email(cfg.Channels, logger)
	if err != nil {
		return nil, err
	}
	smsSender, err := SMS(cfg.Channels, logger)
	if err != nil {
		return nil, err
	}

	reg := dispatch.NewRegistry(cfg.Channels.Default)
	if err := reg.Register(emailSender); err != nil {
		return nil, fmt.Errorf("factory: register email sender: %w", err)
	}
	if err := reg.Register(smsSender); err != nil {
		return nil, fmt.Errorf("factory: register sms sender: %w", err)
	}

	if _, err := reg.Default(); err != nil {
		return nil, fmt.Errorf("factory: default channel %q: %w", cfg.Channels.Default, err)
	}

	return reg, nil
}

func sinkFor(backend string) (io.Writer, error) {
	switch backend {
	case "", "console":
		return os.Stdout, nil
	case "discard":
		return io.Discard, nil
	default:
		return nil, fmt.Errorf("unsupported sink backend %q", backend)
	}
}
