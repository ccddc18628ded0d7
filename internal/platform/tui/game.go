package tui

import "github.com/vovakirdan/sokoban/internal/core"

// Game is the interface the terminal front end drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier, used for screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// resizer is implemented by games that can adapt to a new screen size
// without losing progress. Other games are Reset on resize.
type resizer interface {
	Resize(w, h int)
}

// reloader is implemented by games that can reload a level whose files
// changed on disk.
type reloader interface {
	Reload(level int) bool
}
