package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// defaults returns a Config preset with the values whose zero value is a
// valid setting. cleanenv applies env-default to any field still zero after
// the YAML is read, so a tag default would overwrite an explicit false or 0.
func defaults() Config {
	return Config{
		Server:    ServerConfig{MetricsEnabled: true},
		CORS:      CORSConfig{AllowCredentials: true},
		RateLimit: RateLimitConfig{RequestsPerMinute: 120},
	}
}

// Load reads configuration with priority ENV > YAML > defaults.
// The YAML path comes from CONFIG_PATH; when unset, ./config.yaml is used
// if present and ENV + defaults otherwise.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		return LoadFile(defaultConfigPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: file %s: %w", defaultConfigPath, err)
	}

	cfg := defaults()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

// LoadFile reads configuration from path, which must exist, with ENV
// overrides applied on top.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	cfg := defaults()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
