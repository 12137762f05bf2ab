// Package config loads the game configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full game configuration as read from YAML. Zero values are
// replaced with defaults before validation.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Locations LocationsConfig `yaml:"locations"`
	Time      TimeConfig      `yaml:"time"`
	Display   DisplayConfig   `yaml:"display"`
}

// WorldConfig controls terrain generation.
type WorldConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// LocationsConfig bounds how many points of interest are placed.
type LocationsConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimeConfig controls how fast the day passes.
type TimeConfig struct {
	MinutesPerTurn int `yaml:"minutesPerTurn"`
}

// DisplayConfig controls the window.
type DisplayConfig struct {
	Scale int `yaml:"scale"`
}

// Default returns the standard configuration: an 80x50 island, 5 to 8
// locations, one minute per turn.
func Default() *Config {
	return &Config{
		World:     WorldConfig{Width: 80, Height: 50, Seed: 42},
		Locations: LocationsConfig{Min: 5, Max: 8},
		Time:      TimeConfig{MinutesPerTurn: 1},
		Display:   DisplayConfig{Scale: 12},
	}
}

// Load reads and validates a YAML configuration file. Missing fields keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults replaces zero values with their defaults so a sparse file
// stays usable.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.World.Width == 0 {
		cfg.World.Width = def.World.Width
	}
	if cfg.World.Height == 0 {
		cfg.World.Height = def.World.Height
	}
	if cfg.Locations.Min == 0 {
		cfg.Locations.Min = def.Locations.Min
	}
	if cfg.Locations.Max == 0 {
		cfg.Locations.Max = def.Locations.Max
	}
	if cfg.Time.MinutesPerTurn == 0 {
		cfg.Time.MinutesPerTurn = def.Time.MinutesPerTurn
	}
	if cfg.Display.Scale == 0 {
		cfg.Display.Scale = def.Display.Scale
	}
}

// Validate rejects configurations the game cannot run with.
func Validate(cfg *Config) error {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Locations.Min < 0 || cfg.Locations.Max < cfg.Locations.Min {
		return fmt.Errorf("location bounds must satisfy 0 <= min <= max, got %d..%d", cfg.Locations.Min, cfg.Locations.Max)
	}
	if cfg.Time.MinutesPerTurn <= 0 {
		return fmt.Errorf("minutesPerTurn must be positive, got %d", cfg.Time.MinutesPerTurn)
	}
	if cfg.Display.Scale <= 0 {
		return fmt.Errorf("display scale must be positive, got %d", cfg.Display.Scale)
	}
	return nil
}
