// Package sokoban provides the block-pushing puzzle as a platform game.
package sokoban

import (
	"io"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/sokoban/internal/core"
	"github.com/vovakirdan/sokoban/internal/games/sokoban/core"
)

// Options configures a Game.
type Options struct {
	Rows         int // Grid rows of every level
	Cols         int // Grid columns of every level
	LastLevel    int // Number of the final level
	StartLevel   int // Level loaded by Reset, 1 if unset
	AdvanceDelay int // Ticks to show a cleared level before loading the next

	// LevelNames maps level numbers to display names. Optional.
	LevelNames map[int]string

	Logger *log.Logger
}

// Game drives a level controller from platform input and draws it.
type Game struct {
	ctrl *core.Controller
	opts Options
	log  *log.Logger

	// Screen dimensions
	screenW int
	screenH int

	tick     uint64
	paused   bool
	tooSmall bool
}

// New creates a game over the given level store.
func New(store core.LevelStore, opts Options) *Game {
	if opts.StartLevel < 1 {
		opts.StartLevel = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		ctrl: core.NewController(store, core.Options{
			Rows:         opts.Rows,
			Cols:         opts.Cols,
			LastLevel:    opts.LastLevel,
			AdvanceDelay: opts.AdvanceDelay,
		}),
		opts: opts,
		log:  logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "sokoban"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban"
}

// Reset adapts to the screen and loads the start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.start(g.opts.StartLevel)
}

// Resize updates the screen dimensions without touching the level.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// minSize is the grid at two columns per cell plus the HUD and three status lines.
func (g *Game) minSize() (int, int) {
	w := g.opts.Cols * cellWidth
	if w < 24 {
		w = 24
	}
	return w, g.opts.Rows + hudHeight + 4
}

func (g *Game) start(level int) {
	if err := g.ctrl.Start(level); err != nil {
		g.log.Error("level load failed", "level", level, "err", err)
		return
	}
	g.log.Info("level started", "level", level)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Restart works while paused and unpauses.
	if in.Has(platformcore.ActionRestart) {
		g.Restart()
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.ctrl.State() == core.StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	before := g.ctrl.State()
	level := g.ctrl.Level()
	if _, err := g.ctrl.Tick(DirFromAction(in.LatestDirection())); err != nil {
		g.log.Error("level load failed", "level", g.ctrl.Level(), "err", err)
	}
	g.logTransition(before, level)

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) logTransition(before core.State, level int) {
	after := g.ctrl.State()
	switch {
	case after == core.StateGameComplete && before != after:
		g.log.Info("all levels solved", "last", level)
	case after == core.StateLevelComplete && before != after:
		g.log.Info("level solved", "level", level)
	case g.ctrl.Level() != level && after == core.StatePlaying:
		g.log.Info("level solved", "level", level)
		g.log.Info("level started", "level", g.ctrl.Level())
	}
}

// Restart reloads the current level, or level 1 once every level is solved.
func (g *Game) Restart() {
	g.paused = false
	if err := g.ctrl.Restart(); err != nil {
		g.log.Error("restart failed", "level", g.ctrl.Level(), "err", err)
		return
	}
	g.log.Info("level restarted", "level", g.ctrl.Level())
}

// Reload restarts the current level if it is the given one. Front ends call
// it when a level file changes on disk. Reports whether the level reloaded.
func (g *Game) Reload(level int) bool {
	if level != g.ctrl.Level() || g.ctrl.State() == core.StateGameComplete {
		return false
	}
	if err := g.ctrl.Restart(); err != nil {
		g.log.Warn("reload failed", "level", level, "err", err)
		return true
	}
	g.log.Info("level reloaded", "level", level)
	return true
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Level:     g.ctrl.Level(),
		LastLevel: g.ctrl.LastLevel(),
		Finished:  g.ctrl.Finished(),
		Failed:    g.ctrl.State() == core.StateLoadFailed,
		Paused:    g.paused || g.tooSmall,
	}
}

// Controller exposes the level controller for front ends that draw the
// grid themselves.
func (g *Game) Controller() *core.Controller {
	return g.ctrl
}

// LevelName returns the display name of a level.
func (g *Game) LevelName(level int) string {
	return g.opts.LevelNames[level]
}

// DirFromAction maps a platform movement action to a grid direction.
func DirFromAction(a platformcore.Action) core.Dir {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp
	case platformcore.ActionDown:
		return core.DirDown
	case platformcore.ActionLeft:
		return core.DirLeft
	case platformcore.ActionRight:
		return core.DirRight
	default:
		return core.DirNone
	}
}
