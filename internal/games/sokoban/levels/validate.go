package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/sokoban/internal/games/sokoban/core"
)

// ErrTooFewBlocks means a level has more targets than pushable blocks and
// can never be solved.
var ErrTooFewBlocks = errors.New("fewer blocks than targets")

// Validate loads level n from store and checks it can be played:
// correct size, live cell values only, exactly one player, and at least
// as many blocks as targets.
func Validate(store core.LevelStore, n, rows, cols int) error {
	grid, err := store.LoadLevelGrid(n)
	if err != nil {
		return err
	}
	solution, err := store.LoadSolutionMask(n)
	if err != nil {
		return err
	}
	s, err := core.NewSession(n, grid, solution, rows, cols)
	if err != nil {
		return err
	}

	blocks := s.Grid.Count(core.Pushable)
	if blocks < len(s.Targets) {
		return fmt.Errorf("level %d: %w (%d blocks, %d targets)", n, ErrTooFewBlocks, blocks, len(s.Targets))
	}
	return nil
}

// Result is the validation outcome of one level.
type Result struct {
	Level Info
	Err   error
}

// ValidateAll validates every level of a catalog in order.
func ValidateAll(c Catalog, rows, cols int) ([]Result, error) {
	infos, err := c.List()
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(infos))
	for i, info := range infos {
		results[i] = Result{Level: info, Err: Validate(c, info.Number, rows, cols)}
	}
	return results, nil
}
