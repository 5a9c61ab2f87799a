package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	Postgres PostgresConfig
	RabbitMQ RabbitMQConfig

	// Security
	JWT       JWTConfig
	RateLimit RateLimitConfig

	// Property listing specifics
	Cache CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

type RabbitMQConfig struct {
	Enabled  bool
	URL      string
	Exchange string

	// Queue is consumed by the event consumer binary.
	Queue string
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type CacheConfig struct {
	SlugSize int
	SlugTTL  time.Duration
}

// Load loads configuration using Viper.
// A .env file, when present, is loaded into the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")

	// RabbitMQ
	cfg.RabbitMQ.Enabled = viper.GetBool("rabbitmq.enabled")
	cfg.RabbitMQ.URL = viper.GetString("rabbitmq.url")
	cfg.RabbitMQ.Exchange = viper.GetString("rabbitmq.exchange")
	cfg.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")

	// JWT
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.SecretKey = secret
	}
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	// Rate limit
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Cache
	cfg.Cache.SlugSize = viper.GetInt("cache.slug_size")
	cfg.Cache.SlugTTL = viper.GetDuration("cache.slug_ttl")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings every binary needs.
func (cfg *Config) Validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return errors.New("http_server.port must be positive")
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required (or DATABASE_URL)")
	}
	if cfg.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key is required (or JWT_SECRET)")
	}
	if cfg.JWT.TTL <= 0 {
		return errors.New("jwt.ttl must be positive")
	}
	if cfg.RabbitMQ.Enabled && cfg.RabbitMQ.URL == "" {
		return errors.New("rabbitmq.url is required when rabbitmq.enabled is true")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return errors.New("rate_limit.requests_per_min must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_conns", 10)

	viper.SetDefault("rabbitmq.enabled", false)
	viper.SetDefault("rabbitmq.exchange", "property.events")
	viper.SetDefault("rabbitmq.queue", "property.events.audit")

	viper.SetDefault("jwt.issuer", "property-listing")
	viper.SetDefault("jwt.ttl", "24h")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("cache.slug_size", 512)
	viper.SetDefault("cache.slug_ttl", "5m")
}
