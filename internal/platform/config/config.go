// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

// Notifier drivers.
const (
	NotifierLog   = "log"
	NotifierEmail = "email"
	NotifierAMQP  = "amqp"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"`
	Redis     RedisConfig     `koanf:"redis"`
	Notifier  NotifierConfig  `koanf:"notifier"`
	Lifecycle LifecycleConfig `koanf:"lifecycle"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the outbound email API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StorageConfig selects and configures the project store.
type StorageConfig struct {
	Driver string      `koanf:"driver"`
	Mongo  MongoConfig `koanf:"mongo"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI        string        `koanf:"uri"`
	Database   string        `koanf:"database"`
	Collection string        `koanf:"collection"`
	Timeout    time.Duration `koanf:"timeout"`
}

// RedisConfig configures the notification dedupe cache.
type RedisConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Addr      string        `koanf:"addr"`
	Password  string        `koanf:"password"`
	DB        int           `koanf:"db"`
	DedupeTTL time.Duration `koanf:"dedupe_ttl"`
}

// NotifierConfig selects and configures notification delivery.
type NotifierConfig struct {
	Driver          string        `koanf:"driver"`
	From            string        `koanf:"from"`
	AdminEmail      string        `koanf:"admin_email"`
	APIKey          string        `koanf:"api_key"`
	MaxWorkers      int           `koanf:"max_workers"`
	DispatchTimeout time.Duration `koanf:"dispatch_timeout"`
	AMQP            AMQPConfig    `koanf:"amqp"`
}

// AMQPConfig holds RabbitMQ publisher settings.
type AMQPConfig struct {
	URL      string `koanf:"url"`
	Exchange string `koanf:"exchange"`
}

// LifecycleConfig tunes the project service.
type LifecycleConfig struct {
	MaxConflictRetries int `koanf:"max_conflict_retries"`
}
