package apparent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-astrometry/astro"
	"github.com/litescript/ls-astrometry/nutation"
	"github.com/litescript/ls-astrometry/refraction"
)

// Config selects the models and stages used by a Pipeline.
type Config struct {
	Nutation   nutation.Model   `yaml:"nutation" json:"nutation"`
	Refraction RefractionConfig `yaml:"refraction" json:"refraction"`
	Stages     Stages           `yaml:"stages" json:"stages"`

	// RigorousProperMotion propagates stars with a known parallax through
	// Cartesian space motion instead of the linear RA/Dec rates.
	RigorousProperMotion bool `yaml:"rigorous_proper_motion" json:"rigorous_proper_motion"`

	// Workers bounds concurrent work in ObserveAll and horizontal batches.
	// Zero means GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`
}

// RefractionConfig selects the refraction model and atmosphere.
type RefractionConfig struct {
	Model      refraction.Model      `yaml:"model" json:"model"`
	Conditions refraction.Conditions `yaml:"conditions" json:"conditions"`
}

// Stages switches the optional corrections on or off. Precession, nutation
// and the horizontal transform always run.
type Stages struct {
	ProperMotion   bool `yaml:"proper_motion" json:"proper_motion"`
	AnnualParallax bool `yaml:"annual_parallax" json:"annual_parallax"`
	Aberration     bool `yaml:"aberration" json:"aberration"`
	Refraction     bool `yaml:"refraction" json:"refraction"`
}

// DefaultConfig enables every stage with the reduced nutation series,
// Bennett refraction and the standard atmosphere.
func DefaultConfig() Config {
	return Config{
		Nutation: nutation.Reduced,
		Refraction: RefractionConfig{
			Model:      refraction.Bennett,
			Conditions: refraction.DefaultConditions(),
		},
		Stages: Stages{
			ProperMotion:   true,
			AnnualParallax: true,
			Aberration:     true,
			Refraction:     true,
		},
		RigorousProperMotion: true,
	}
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks the models, the atmosphere and the worker count.
func (c Config) Validate() error {
	switch c.Nutation {
	case nutation.Reduced, nutation.IAU1980:
	default:
		return fmt.Errorf("unknown nutation model %v", c.Nutation)
	}
	switch c.Refraction.Model {
	case refraction.Bennett, refraction.Saemundsson, refraction.Radio:
	default:
		return fmt.Errorf("unknown refraction model %v", c.Refraction.Model)
	}
	if err := c.Refraction.Conditions.Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return astro.NewRangeError("workers", float64(c.Workers), 0, 1024)
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
