package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"property-listing/config"
	"property-listing/config/postgre"
	"property-listing/config/rabbitmq"
	_ "property-listing/docs" // Swagger docs
	"property-listing/internal/httpserver"
	"property-listing/internal/property"
	propertyMQ "property-listing/internal/property/delivery/rabbitmq"
	"property-listing/pkg/log"
	"property-listing/pkg/scope"
)

// @title       Property Listing API
// @description CRUD API for real-estate property listings with slug lookup, filtering and pagination.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Property Listing API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	pool, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
	}
	defer postgre.Disconnect(ctx, pool)

	// 4. Token manager
	scopeManager, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to init token manager: %v", err)
	}

	// 5. RabbitMQ (optional)
	var publisher property.EventPublisher
	if cfg.RabbitMQ.Enabled {
		conn, ch, mqErr := rabbitmq.Connect(cfg.RabbitMQ)
		if mqErr != nil {
			logger.Warnf(ctx, "RabbitMQ not available, property events disabled: %v", mqErr)
		} else {
			defer rabbitmq.Disconnect(conn, ch)
			publisher = propertyMQ.NewProducer(logger, ch, cfg.RabbitMQ.Exchange)
			logger.Infof(ctx, "Publishing property events to exchange %q", cfg.RabbitMQ.Exchange)
		}
	} else {
		logger.Info(ctx, "RabbitMQ disabled, property events will not be published")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		PostgresDB:   pool,
		Publisher:    publisher,
		ScopeManager: scopeManager,
		RateLimit:    cfg.RateLimit,
		Cache:        cfg.Cache,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
