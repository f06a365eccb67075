// Package config defines process configuration and its loading.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and environment variables.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"strconv"

	"github.com/okian/tagscore/internal/domain/scoring"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity of diagnostics: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// HitValues overrides points per hit-location code. Keys are the codes
	// written as strings so they survive YAML and env flattening.
	HitValues map[string]int `koanf:"hit_values"`

	// MetricsFile, when set, receives a Prometheus text dump after each run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config with defaults.
func New() *Config {
	values := scoring.DefaultValues()
	hv := make(map[string]int, len(values))
	for code, points := range values {
		hv[strconv.Itoa(code)] = points
	}
	return &Config{
		LogLevel:  "info",
		HitValues: hv,
	}
}

// LocationValues converts HitValues to the form the scoring table takes.
func (c *Config) LocationValues() (map[int]int, error) {
	out := make(map[int]int, len(c.HitValues))
	for key, points := range c.HitValues {
		code, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: hit_values key %q is not a location code", ErrInvalidConfig, key)
		}
		if points <= 0 {
			return nil, fmt.Errorf("%w: hit_values[%s] must be positive, got %d", ErrInvalidConfig, key, points)
		}
		out[code] = points
	}
	return out, nil
}
