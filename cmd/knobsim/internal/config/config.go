// Package config loads the optional knobsim.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the newest configuration schema this build
// understands. Files declaring a newer major version are rejected.
const SchemaVersion = "v1"

// Config represents the optional knobsim.yaml configuration.
type Config struct {
	Schema string     `yaml:"schema,omitempty"`
	Knob   KnobConfig `yaml:"knob"`
}

// KnobConfig contains the initial knob parameters.
type KnobConfig struct {
	Value float64 `yaml:"value"`
	// Min and Max are omitted or null for an unbounded knob.
	Min       *float64 `yaml:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty"`
	Divisions int      `yaml:"divisions"`
	Diameter  float64  `yaml:"diameter"`
}

// Default returns the configuration used when no file is present: an
// unbounded, unquantized knob at rest.
func Default() *Config {
	return &Config{
		Schema: SchemaVersion,
		Knob:   KnobConfig{Diameter: 48},
	}
}

// LoadOptional reads path if present, falling back to defaults when the
// file does not exist.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validateSchema(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

// Save writes the configuration to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// validateSchema checks the declared schema against what this build
// understands. An empty schema means the current version.
func (c *Config) validateSchema() error {
	if c.Schema == "" {
		c.Schema = SchemaVersion
		return nil
	}
	if !semver.IsValid(c.Schema) {
		return fmt.Errorf("invalid schema version %q", c.Schema)
	}
	if semver.Compare(semver.Major(c.Schema), SchemaVersion) > 0 {
		return fmt.Errorf("schema %s is newer than supported %s", c.Schema, SchemaVersion)
	}
	return nil
}

// sanitize silently repairs degraded values instead of failing, the
// same policy the knob itself applies to its inputs.
func (c *Config) sanitize() {
	if c.Knob.Divisions < 0 {
		c.Knob.Divisions = 0
	}
	if c.Knob.Diameter <= 0 {
		c.Knob.Diameter = 48
	}
	if c.Knob.Min != nil && c.Knob.Max != nil && *c.Knob.Min > *c.Knob.Max {
		c.Knob.Min, c.Knob.Max = c.Knob.Max, c.Knob.Min
	}
}
