package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host image

	"github.com/heartmarshall/timetrack-backend/internal/export"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	loc, err := loadLocation(c.TimeTrack.Timezone)
	if err != nil {
		return fmt.Errorf("timetrack: %w", err)
	}
	c.TimeTrack.Location = loc

	if err := c.Export.validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

func (e *ExportConfig) validate() error {
	loc, err := loadLocation(e.Timezone)
	if err != nil {
		return err
	}
	e.Location = loc

	labels := ParseLabels(e.LabelsRaw)
	if labels != nil && len(labels) != export.ColumnCount {
		return fmt.Errorf("labels must have %d entries (got %d)", export.ColumnCount, len(labels))
	}
	e.Labels = labels

	return nil
}

// loadLocation resolves an IANA zone name. An empty name means UTC.
func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", name, err)
	}
	return loc, nil
}
