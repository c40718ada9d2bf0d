package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Storage.validate(),
		c.Redis.validate(),
		c.Notifier.validate(),
		c.Lifecycle.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case StorageMemory:
		return nil
	case StorageMongo:
		var errs []error
		if s.Mongo.URI == "" {
			errs = append(errs, errors.New("storage.mongo.uri must not be empty"))
		}
		if s.Mongo.Database == "" {
			errs = append(errs, errors.New("storage.mongo.database must not be empty"))
		}
		if s.Mongo.Collection == "" {
			errs = append(errs, errors.New("storage.mongo.collection must not be empty"))
		}
		if s.Mongo.Timeout <= 0 {
			errs = append(errs, errors.New("storage.mongo.timeout must be positive"))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("storage.driver must be one of: %s, %s; got %q", StorageMemory, StorageMongo, s.Driver)
	}
}

func (r *RedisConfig) validate() error {
	if !r.Enabled {
		return nil
	}

	var errs []error

	if r.Addr == "" {
		errs = append(errs, errors.New("redis.addr must not be empty when redis is enabled"))
	}
	if r.DedupeTTL <= 0 {
		errs = append(errs, errors.New("redis.dedupe_ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (n *NotifierConfig) validate() error {
	var errs []error

	switch n.Driver {
	case NotifierLog:
	case NotifierEmail:
		if n.From == "" {
			errs = append(errs, errors.New("notifier.from must not be empty for the email driver"))
		}
		if n.APIKey == "" {
			errs = append(errs, errors.New("notifier.api_key must not be empty for the email driver"))
		}
	case NotifierAMQP:
		if n.AMQP.URL == "" {
			errs = append(errs, errors.New("notifier.amqp.url must not be empty for the amqp driver"))
		}
		if n.AMQP.Exchange == "" {
			errs = append(errs, errors.New("notifier.amqp.exchange must not be empty for the amqp driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("notifier.driver must be one of: %s, %s, %s; got %q",
			NotifierLog, NotifierEmail, NotifierAMQP, n.Driver))
	}

	if n.MaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("notifier.max_workers must be >= 1, got %d", n.MaxWorkers))
	}
	if n.DispatchTimeout <= 0 {
		errs = append(errs, errors.New("notifier.dispatch_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LifecycleConfig) validate() error {
	if l.MaxConflictRetries < 1 {
		return fmt.Errorf("lifecycle.max_conflict_retries must be >= 1, got %d", l.MaxConflictRetries)
	}
	return nil
}
