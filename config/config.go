// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads the settings for the puzzle runners from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mdhender/aoc23/cubes"
	"github.com/spf13/afero"
)

// Config holds the complete application configuration
type Config struct {
	Inputs   InputsConfig   `toml:"inputs"`
	Database DatabaseConfig `toml:"database"`
	Cubes    CubesConfig    `toml:"cubes"`
}

// InputsConfig controls where inputs are found and how they are read.
type InputsConfig struct {
	DataDir string `toml:"data_dir"`
	AutoEOL bool   `toml:"auto_eol"`
	StripCR bool   `toml:"strip_cr"`
}

// DatabaseConfig holds the run store settings.
// An empty path selects an in-memory database.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// CubesConfig holds the cube game settings.
type CubesConfig struct {
	TruncateBadDraws bool        `toml:"truncate_bad_draws"`
	Bag              []BagConfig `toml:"bag"`
}

// BagConfig is one color in the bag.
type BagConfig struct {
	Color string `toml:"color"`
	Max   int    `toml:"max"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file, fills in defaults for anything
// the file leaves out, and validates the result.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Inputs.DataDir == "" {
		c.Inputs.DataDir = "testdata"
	}
	c.Inputs.DataDir = os.ExpandEnv(c.Inputs.DataDir)
	c.Database.Path = os.ExpandEnv(c.Database.Path)
	if len(c.Cubes.Bag) == 0 {
		for _, limit := range cubes.DefaultBag() {
			c.Cubes.Bag = append(c.Cubes.Bag, BagConfig{Color: limit.Color, Max: limit.Max})
		}
	}
}

// Validate checks the bag for empty or duplicate colors and negative limits.
func (c *Config) Validate() error {
	seen := map[string]bool{}
	for n, item := range c.Cubes.Bag {
		if item.Color == "" {
			return fmt.Errorf("cubes.bag[%d]: missing color", n)
		} else if seen[item.Color] {
			return fmt.Errorf("cubes.bag[%d]: duplicate color %q", n, item.Color)
		} else if item.Max < 0 {
			return fmt.Errorf("cubes.bag[%d]: %q: max must not be negative", n, item.Color)
		}
		seen[item.Color] = true
	}
	return nil
}

// Bag returns the configured bag for the cube rules.
func (c *Config) Bag() cubes.Bag {
	bag := make(cubes.Bag, 0, len(c.Cubes.Bag))
	for _, item := range c.Cubes.Bag {
		bag = append(bag, cubes.Limit{Color: item.Color, Max: item.Max})
	}
	return bag
}
