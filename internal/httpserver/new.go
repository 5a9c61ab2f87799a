package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"property-listing/config"
	"property-listing/internal/property"
	"property-listing/pkg/log"
	"property-listing/pkg/scope"
)

// pinger reports whether a backing store is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	postgresDB *pgxpool.Pool
	db         pinger
	publisher  property.EventPublisher

	// Security
	scopeManager scope.Manager
	rateLimit    config.RateLimitConfig

	// Property domain
	cache config.CacheConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *pgxpool.Pool
	// Publisher is optional. Nil disables property events.
	Publisher property.EventPublisher

	ScopeManager scope.Manager
	RateLimit    config.RateLimitConfig
	Cache        config.CacheConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		postgresDB:   cfg.PostgresDB,
		publisher:    cfg.Publisher,
		scopeManager: cfg.ScopeManager,
		rateLimit:    cfg.RateLimit,
		cache:        cfg.Cache,
	}
	if cfg.PostgresDB != nil {
		srv.db = cfg.PostgresDB
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres pool is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	return nil
}
