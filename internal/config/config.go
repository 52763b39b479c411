// Package config loads runtime settings from FILECRAFT_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "FILECRAFT"

// Config holds everything that is not a positional argument.
type Config struct {
	Log     LogConfig `mapstructure:"log"`
	Seed    uint64    `mapstructure:"seed"`
	NoColor bool      `mapstructure:"no_color"`
}

// LogConfig controls the diagnostic logger. Progress output is unaffected.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format"` // text, json
}

// Load reads the environment on top of the defaults and validates the result.
//
// Environment variables use the FILECRAFT_ prefix with dots replaced by
// underscores, e.g. FILECRAFT_LOG_LEVEL=DEBUG.
func Load() (*Config, error) {
	v := viper.New()
	setupViper(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Log.Level = strings.ToUpper(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate rejects unknown log levels and formats.
func Validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid log level %q (valid: DEBUG, INFO, WARN, ERROR)", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (valid: text, json)", cfg.Log.Format)
	}
	return nil
}

// setupViper registers defaults, which also makes every key visible to
// AutomaticEnv during Unmarshal.
func setupViper(v *viper.Viper) {
	v.SetDefault("log.level", "WARN")
	v.SetDefault("log.format", "text")
	v.SetDefault("seed", 0)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
