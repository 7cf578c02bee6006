package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/order-notifier/internal/channel/sms"
	"github.com/example/order-notifier/internal/config"
	"github.com/example/order-notifier/internal/dispatch"
	"github.com/example/order-notifier/internal/factory"
	"github.com/example/order-notifier/internal/logger"
	"github.com/example/order-notifier/internal/models"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fail("config load", err)
	}

	baseLogger, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		fail("logger init", err)
	}
	log := baseLogger.With().Str("service", "notifier").Logger()

	reg, err := factory.Registry(cfg, log.With().Str("component", "factory").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to assemble channel registry")
	}

	dispatcher, err := dispatch.New(reg, log.With().Str("component", "dispatch").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create dispatcher")
	}

	order := models.Order{
		ID:         "101",
		CustomerID: uuid.NewString(),
		CreatedAt:  time.Now(),
	}

	// Default channel first, then an explicitly addressed delivery.
	if _, err := dispatcher.Notify(ctx, order); err != nil {
		log.Fatal().Err(err).Msg("default dispatch failed")
	}
	if _, err := dispatcher.Notify(ctx, order, sms.Name); err != nil {
		log.Fatal().Err(err).Msg("sms dispatch failed")
	}
}

func fail(stage string, err error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Fatal().Err(err).Str("stage", stage).Msg("notifier init failed")
}
