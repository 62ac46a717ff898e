// Package config holds the tunable parameters of the collision evaluation
// and their YAML representation. The evaluator itself receives plain
// values; nothing here is global state.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openuas/airspace/internal/lib/obstacle"
)

// Config is the complete configuration.
type Config struct {
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// EvaluationConfig bounds the telemetry interpolation trust window.
type EvaluationConfig struct {
	MaxTelemetryInterpolateIntervalSec float64 `yaml:"max_telemetry_interpolate_interval_sec"`
	MaxAirspeedFeetPerSecond           float64 `yaml:"max_airspeed_feet_per_second"`
}

// LoggingConfig holds logger settings for the dev harness.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns competition-realistic defaults.
func DefaultConfig() *Config {
	return &Config{
		Evaluation: EvaluationConfig{
			MaxTelemetryInterpolateIntervalSec: 10,
			MaxAirspeedFeetPerSecond:           200,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate rejects non-positive evaluation bounds.
func (c *Config) Validate() error {
	if c.Evaluation.MaxTelemetryInterpolateIntervalSec <= 0 {
		return fmt.Errorf("evaluation.max_telemetry_interpolate_interval_sec must be positive, got %f",
			c.Evaluation.MaxTelemetryInterpolateIntervalSec)
	}
	if c.Evaluation.MaxAirspeedFeetPerSecond <= 0 {
		return fmt.Errorf("evaluation.max_airspeed_feet_per_second must be positive, got %f",
			c.Evaluation.MaxAirspeedFeetPerSecond)
	}
	return nil
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EvaluatorConfig converts the evaluation section into the evaluator's
// parameter struct.
func (c *Config) EvaluatorConfig() obstacle.Config {
	return obstacle.Config{
		MaxInterpolateInterval: time.Duration(c.Evaluation.MaxTelemetryInterpolateIntervalSec * float64(time.Second)),
		MaxAirspeedFtPerSec:    c.Evaluation.MaxAirspeedFeetPerSecond,
	}
}
