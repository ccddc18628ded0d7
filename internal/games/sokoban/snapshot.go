package sokoban

import "github.com/vovakirdan/sokoban/internal/games/sokoban/core"

// Snapshot captures the game state for tests and replay checks.
type Snapshot struct {
	Tick      uint64
	Level     int
	LastLevel int
	State     string // controller state, or "paused_small_window"
	Player    core.Coord
	Placed    int
	Targets   int
	Outcome   string
	Grid      [][]int // nil before the first level loads
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Level:     g.ctrl.Level(),
		LastLevel: g.ctrl.LastLevel(),
		State:     g.ctrl.State().String(),
		Outcome:   g.ctrl.LastOutcome().String(),
	}
	if g.tooSmall {
		snap.State = "paused_small_window"
	}
	if s := g.ctrl.Session(); s != nil {
		snap.Player = s.Player
		snap.Placed = s.Placed()
		snap.Targets = len(s.Targets)
		snap.Grid = s.Grid.Ints()
	}
	return snap
}
