// Package config loads generation settings from MAZE_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "MAZE_"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds maze and mesh generation settings
type Config struct {
	Rows               int     `env:"ROWS" envDefault:"13"`
	Cols               int     `env:"COLS" envDefault:"15"`
	CellWidth          float64 `env:"CELL_WIDTH" envDefault:"3.75"`
	CellHeight         float64 `env:"CELL_HEIGHT" envDefault:"3.5"`
	PlacementThreshold float64 `env:"PLACEMENT_THRESHOLD" envDefault:"0.1"`
	Seed               int64   `env:"SEED" envDefault:"0"` // 0 = random
	Debug              bool    `env:"DEBUG" envDefault:"false"`
	LogDir             string  `env:"LOG_DIR" envDefault:"logs"`
}

// Default returns the built-in settings without reading the environment
func Default() *Config {
	return &Config{
		Rows:               13,
		Cols:               15,
		CellWidth:          3.75,
		CellHeight:         3.5,
		PlacementThreshold: 0.1,
		LogDir:             "logs",
	}
}

// Load parses MAZE_* variables over the defaults and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects sizes and probabilities the generators cannot use
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case !(c.CellWidth > 0) || !(c.CellHeight > 0):
		return fmt.Errorf("%w: cell size %gx%g", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	case c.PlacementThreshold < 0 || c.PlacementThreshold > 1:
		return fmt.Errorf("%w: placement threshold %g", ErrInvalidConfig, c.PlacementThreshold)
	}
	return nil
}
