package delaunay

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// How far the super triangle reaches beyond the region.
	DefaultMargin = 10
	// Consecutive rejected candidates before the vertex sampler gives up.
	DefaultMaxAttempts = 1000
)

// Tunables for an Engine. The zero value is not useful, start from
// DefaultConfig.
type Config struct {
	Margin      float64 `yaml:"margin"`
	MaxAttempts int     `yaml:"max_attempts"`
	// Seed for the engine's random source. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`
	// Default spacing for random and outer vertices, used by the CLI.
	Interval float64 `yaml:"interval"`
}

func DefaultConfig() Config {
	return Config{
		Margin:      DefaultMargin,
		MaxAttempts: DefaultMaxAttempts,
	}
}

func (c Config) Validate() error {
	if !(c.Margin > 0) || math.IsInf(c.Margin, 0) {
		return errors.Errorf("margin must be positive and finite, got %g", c.Margin)
	}
	if c.MaxAttempts < 0 {
		return errors.Errorf("max_attempts must not be negative, got %d", c.MaxAttempts)
	}
	if c.Interval < 0 || math.IsNaN(c.Interval) || math.IsInf(c.Interval, 0) {
		return errors.Errorf("interval must not be negative, got %g", c.Interval)
	}
	return nil
}

// A copy of c with every invalid field replaced by its default
func (c Config) withDefaults() Config {
	if !(c.Margin > 0) || math.IsInf(c.Margin, 0) {
		c.Margin = DefaultMargin
	}
	if c.MaxAttempts < 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if !(c.Interval >= 0) || math.IsInf(c.Interval, 0) {
		c.Interval = 0
	}
	return c
}

// Read a YAML config. Fields missing from the document keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := config.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return config, nil
}
