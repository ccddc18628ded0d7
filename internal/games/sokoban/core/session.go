package core

import "fmt"

// Session is the complete state of one level attempt.
// It is built in one piece from level data and discarded on restart or advance.
type Session struct {
	Level   int
	Grid    *Grid
	Mask    *SolutionMask
	Targets []Coord
	Player  Coord
}

// NewSession builds a session from level and solution file values.
// The grid must contain exactly one player cell.
func NewSession(level int, grid, solution [][]int, rows, cols int) (*Session, error) {
	g, err := GridFromInts(grid, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("level %d grid: %w", level, err)
	}
	m, err := MaskFromInts(solution, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("level %d solution: %w", level, err)
	}

	players := g.Find(Player)
	if len(players) != 1 {
		return nil, fmt.Errorf("level %d: %w (found %d)", level, ErrPlayerCount, len(players))
	}

	return &Session{
		Level:   level,
		Grid:    g,
		Mask:    m,
		Targets: m.Targets(),
		Player:  players[0],
	}, nil
}

// Move attempts one step in direction d and keeps Player in sync with the grid.
func (s *Session) Move(d Dir) Outcome {
	next, out := Resolve(s.Grid, s.Player, d)
	s.Player = next
	return out
}

// Solved reports whether every target holds a pushable block.
func (s *Session) Solved() bool {
	return IsSolved(s.Grid, s.Targets)
}

// Placed returns the number of targets holding a pushable block.
func (s *Session) Placed() int {
	return PlacedCount(s.Grid, s.Targets)
}
