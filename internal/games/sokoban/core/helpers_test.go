package core

import (
	"errors"
	"fmt"
	"testing"
)

// parseMap converts an ASCII map into level and solution values.
//
//	# wall   @ player   $ block   . target
//	* block on target   + player on target   - or space empty
func parseMap(t *testing.T, lines ...string) (grid, solution [][]int) {
	t.Helper()
	for r, line := range lines {
		if len(line) != len(lines[0]) {
			t.Fatalf("map row %d has width %d, want %d", r, len(line), len(lines[0]))
		}
		g := make([]int, len(line))
		s := make([]int, len(line))
		for c, ch := range line {
			switch ch {
			case ' ', '-':
			case '#':
				g[c] = int(Wall)
			case '@':
				g[c] = int(Player)
			case '$':
				g[c] = int(Pushable)
			case '.':
				s[c] = 1
			case '*':
				g[c] = int(Pushable)
				s[c] = 1
			case '+':
				g[c] = int(Player)
				s[c] = 1
			default:
				t.Fatalf("unknown map rune %q", ch)
			}
		}
		grid = append(grid, g)
		solution = append(solution, s)
	}
	return grid, solution
}

// mustSession builds a session from an ASCII map.
func mustSession(t *testing.T, lines ...string) *Session {
	t.Helper()
	grid, solution := parseMap(t, lines...)
	s, err := NewSession(1, grid, solution, len(lines), len(lines[0]))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// assertSinglePlayer checks the grid and cached coordinate agree.
func assertSinglePlayer(t *testing.T, s *Session) {
	t.Helper()
	players := s.Grid.Find(Player)
	if len(players) != 1 {
		t.Fatalf("grid has %d player cells, want 1", len(players))
	}
	if players[0] != s.Player {
		t.Fatalf("player cell at %v but Player = %v", players[0], s.Player)
	}
}

// memStore is an in-memory LevelStore keyed by level number.
type memStore struct {
	grids     map[int][][]int
	solutions map[int][][]int
	loads     int
}

var errMemMissing = errors.New("missing")

func newMemStore() *memStore {
	return &memStore{
		grids:     make(map[int][][]int),
		solutions: make(map[int][][]int),
	}
}

func (m *memStore) add(t *testing.T, level int, lines ...string) {
	t.Helper()
	m.grids[level], m.solutions[level] = parseMap(t, lines...)
}

func (m *memStore) LoadLevelGrid(level int) ([][]int, error) {
	m.loads++
	g, ok := m.grids[level]
	if !ok {
		return nil, fmt.Errorf("level %d: %w", level, errMemMissing)
	}
	return g, nil
}

func (m *memStore) LoadSolutionMask(level int) ([][]int, error) {
	s, ok := m.solutions[level]
	if !ok {
		return nil, fmt.Errorf("solution %d: %w", level, errMemMissing)
	}
	return s, nil
}
