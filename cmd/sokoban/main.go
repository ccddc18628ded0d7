// sokoban is a block-pushing puzzle for the terminal, a desktop window and SSH.
//
// Usage:
//
//	sokoban play             - Play in the terminal
//	sokoban gui              - Play in a desktop window
//	sokoban levels           - List the levels of the configured source
//	sokoban import <dir>     - Copy a level directory into the SQLite catalog
//	sokoban validate [dir]   - Check every level of a pack
//	sokoban serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 8)
//	--config <path>  - Use a specific config file
//	--levels <dir>   - Read levels from a directory instead of the built-in pack
//	--db <path>      - Read levels from a SQLite catalog
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sokoban/internal/config"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagLevelsDir string
	flagDBPath    string
	flagLogPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push every box onto a target",
	Long: `Sokoban is a block-pushing puzzle. Walk the player around the
warehouse and push every box onto a target to clear the level.

Available commands:
  play      - Play in the terminal
  gui       - Play in a desktop window
  levels    - List the levels of the configured source
  import    - Copy a level directory into the SQLite catalog
  validate  - Check every level of a pack
  serve     - Start SSH server for remote play

Examples:
  sokoban play
  sokoban play --level 3
  sokoban play --levels ./my-pack --watch
  sokoban gui --scale 2
  sokoban import ./my-pack --db ~/.sokoban/levels.db
  sokoban serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Level pack directory (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite level catalog (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config and applies the global flags over it.
// It exits on an unusable config.
func loadConfig() config.SokobanConfig {
	cfg, err := config.LoadSokoban(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger with the given prefix. With --log it writes to
// that file; otherwise to stderr, or nowhere when the terminal is taken by
// the game. The returned func closes the log file.
func newLogger(prefix string, stderr bool) (*log.Logger, func()) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	switch {
	case flagLogPath != "":
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			break
		}
		w = f
		closeFn = func() { f.Close() }
	case stderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn
}
