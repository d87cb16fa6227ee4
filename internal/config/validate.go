package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AdminTokenTTL <= 0 {
		return fmt.Errorf("auth.admin_token_ttl must be > 0 (got %s)", c.Auth.AdminTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxFormBytes <= 0 {
		return fmt.Errorf("server.max_form_bytes must be > 0 (got %d)", c.Server.MaxFormBytes)
	}

	if err := c.Database.validate(); err != nil {
		return err
	}

	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 when redis is enabled (got %s)", c.Redis.TTL)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return c.Log.validate()
}

// Validate checks the database and log sections.
func (c *StoreConfig) Validate() error {
	if err := c.Database.validate(); err != nil {
		return err
	}
	return c.Log.validate()
}

func (d *DatabaseConfig) validate() error {
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", l.Format)
	}
}

func (r *RateLimitConfig) validate() error {
	if r.PublicPerMinute <= 0 {
		return fmt.Errorf("public_per_minute must be > 0 (got %d)", r.PublicPerMinute)
	}
	if r.AdminPerMinute <= 0 {
		return fmt.Errorf("admin_per_minute must be > 0 (got %d)", r.AdminPerMinute)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %s)", r.CleanupInterval)
	}
	return nil
}
