package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sokoban/internal/core"
	"github.com/vovakirdan/sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/sokoban/internal/platform/tui"
)

var (
	flagLevel int
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. Without --level a level picker is shown.

Controls:
  Arrows/WASD/HJKL  - Move
  R                 - Restart the level (level 1 after the last one)
  P                 - Pause
  Ctrl+S            - Save a screenshot
  Esc               - Back to the level list
  Q/Ctrl+C          - Quit

Examples:
  sokoban play
  sokoban play --level 2
  sokoban play --levels ./my-pack --watch
  sokoban play --db ~/.sokoban/levels.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (skips the level picker)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the current level when its files change")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	if cmd.Flags().Changed("watch") {
		cfg.Levels.Watch = flagWatch
	}

	logger, closeLog := newLogger("sokoban", false)
	defer closeLog()

	src, err := openSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer src.close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.TickRate,
	}
	keys := tui.NewKeyMap(cfg.Keys)

	var watch <-chan int
	if cfg.Levels.Watch {
		if src.dir == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs --levels; not watching")
		} else {
			w, watchErr := levels.NewWatcher(src.dir)
			if watchErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not watch levels: %v\n", watchErr)
			} else {
				defer w.Close()
				go func() {
					for err := range w.Errors {
						logger.Warn("watch error", "err", err)
					}
				}()
				watch = w.Events
			}
		}
	}

	start := flagLevel
	if start > src.last {
		fmt.Fprintf(os.Stderr, "Error: level %d not in 1..%d\n", start, src.last)
		os.Exit(1)
	}

	for {
		if start < 1 {
			picked, pickErr := tui.RunLevelSelector("SOKOBAN - "+src.name, src.playable(), keys, rc)
			if pickErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
				os.Exit(1)
			}
			if picked == 0 {
				return
			}
			start = picked
		}

		game := src.newGame(cfg, start, logger)
		final, runErr := tui.Run(game, tui.Options{
			Config: rc,
			Keys:   keys,
			Watch:  watch,
			Logger: logger,
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !final.BackToLevels() {
			return
		}
		start = 0
	}
}
