package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"property-listing/config"
	"property-listing/config/rabbitmq"
	"property-listing/internal/property"
	propertyMQ "property-listing/internal/property/delivery/rabbitmq"
	"property-listing/pkg/log"
)

// main is the entry point for the property event consumer.
// It binds a durable queue to the property exchange and writes every
// lifecycle event to the log as an audit trail.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	if !cfg.RabbitMQ.Enabled {
		logger.Warn(ctx, "RabbitMQ is disabled (rabbitmq.enabled=false), nothing to consume")
		return
	}

	conn, ch, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer rabbitmq.Disconnect(conn, ch)

	consumer := propertyMQ.NewConsumer(logger, ch, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue,
		func(ctx context.Context, event property.Event) error {
			logger.Infof(ctx, "audit: %s property=%s slug=%s owner=%s at=%s",
				event.Type, event.PropertyID, event.Slug, event.OwnerID, event.OccurredAt.Format("2006-01-02T15:04:05Z07:00"))
			return nil
		},
	)

	if err := consumer.Run(ctx); err != nil {
		logger.Error(ctx, "Consumer stopped: ", err)
		return
	}
	logger.Info(ctx, "Consumer service stopped gracefully")
}
