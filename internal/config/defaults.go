package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default configuration: a 15x15 grid,
// four levels and a tick every 125ms.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Grid: GridConfig{
			Rows: 15,
			Cols: 15,
		},
		Levels: LevelsConfig{
			Last:  4,
			Start: 1,
		},
		Runtime: RuntimeConfig{
			TickRate: 8,
		},
		GUI: GUIConfig{
			TileSize: 48,
			Scale:    1,
		},
		Keys: KeysConfig{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Restart: []string{"r"},
			Pause:   []string{"p"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}
