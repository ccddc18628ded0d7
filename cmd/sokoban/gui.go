package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sokoban/internal/platform/gui"
)

var (
	flagGUILevel int
	flagScale    int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a window and play with the arrow keys or WASD.
Hold a direction to keep walking. R restarts the level, P pauses,
Esc or Q closes the window.

Examples:
  sokoban gui
  sokoban gui --level 3 --scale 2`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().IntVar(&flagGUILevel, "level", 0, "Start at this level (default: from config)")
	guiCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale factor (default: from config)")
}

func runGUI(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagScale > 0 {
		cfg.GUI.Scale = flagScale
	}

	logger, closeLog := newLogger("sokoban-gui", true)
	defer closeLog()

	src, err := openSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer src.close()

	start := cfg.Levels.Start
	if flagGUILevel > 0 {
		start = flagGUILevel
	}
	if start > src.last {
		fmt.Fprintf(os.Stderr, "Error: level %d not in 1..%d\n", start, src.last)
		os.Exit(1)
	}

	runner := gui.New(src.newGame(cfg, start, logger), gui.Options{
		Rows:     cfg.Grid.Rows,
		Cols:     cfg.Grid.Cols,
		TileSize: cfg.GUI.TileSize,
		Scale:    cfg.GUI.Scale,
		TickRate: cfg.Runtime.TickRate,
		Title:    "Sokoban",
		Logger:   logger,
	})
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
