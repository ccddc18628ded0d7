// Package config provides YAML-based configuration loading for the
// sokoban front ends.
package config

import (
	"errors"
	"fmt"
)

// SokobanConfig contains all configuration for the game and its front ends.
type SokobanConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Levels   LevelsConfig   `yaml:"levels"`
	Runtime  RuntimeConfig  `yaml:"runtime"`
	GUI      GUIConfig      `yaml:"gui"`
	Keys     KeysConfig     `yaml:"keys"`
	Database DatabaseConfig `yaml:"database"`
}

// GridConfig defines the fixed size of every level.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LevelsConfig defines where levels come from and how they are sequenced.
type LevelsConfig struct {
	Dir          string `yaml:"dir"`           // Empty = embedded pack
	Last         int    `yaml:"last"`          // Number of the final level
	Start        int    `yaml:"start"`         // Level played first
	AdvanceDelay int    `yaml:"advance_delay"` // Ticks shown on level clear
	Watch        bool   `yaml:"watch"`         // Reload levels when files change
}

// RuntimeConfig defines the game loop.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// GUIConfig defines the graphical window.
type GUIConfig struct {
	TileSize int `yaml:"tile_size"`
	Scale    int `yaml:"scale"`
}

// KeysConfig lists the terminal keys bound to each action.
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Restart []string `yaml:"restart"`
	Pause   []string `yaml:"pause"`
	Quit    []string `yaml:"quit"`
}

// DatabaseConfig defines the optional SQLite level catalog.
type DatabaseConfig struct {
	Path string `yaml:"path"` // Empty = do not use a catalog
}

// Validate checks the config for values the game cannot run with.
func (c SokobanConfig) Validate() error {
	var errs []error
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Grid.Rows, c.Grid.Cols))
	}
	if c.Levels.Last < 1 {
		errs = append(errs, fmt.Errorf("levels.last %d must be at least 1", c.Levels.Last))
	}
	if c.Levels.Start < 1 || c.Levels.Start > c.Levels.Last {
		errs = append(errs, fmt.Errorf("levels.start %d not in 1..%d", c.Levels.Start, c.Levels.Last))
	}
	if c.Levels.AdvanceDelay < 0 {
		errs = append(errs, fmt.Errorf("levels.advance_delay %d must not be negative", c.Levels.AdvanceDelay))
	}
	if c.Runtime.TickRate < 1 || c.Runtime.TickRate > 120 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate %d not in 1..120", c.Runtime.TickRate))
	}
	if c.GUI.TileSize < 4 || c.GUI.Scale < 1 {
		errs = append(errs, fmt.Errorf("gui tile_size %d / scale %d too small", c.GUI.TileSize, c.GUI.Scale))
	}
	return errors.Join(errs...)
}
