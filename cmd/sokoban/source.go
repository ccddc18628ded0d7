package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sokoban/internal/config"
	"github.com/vovakirdan/sokoban/internal/games/sokoban"
	"github.com/vovakirdan/sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/sokoban/internal/storage"
)

// levelSource is the catalog the game reads levels from.
type levelSource struct {
	catalog levels.Catalog
	name    string
	infos   []levels.Info
	dir     string // set when levels are files on disk
	last    int
	close   func() error
}

// openSource picks the level source: the SQLite catalog, a level directory,
// or the built-in pack, in that order of preference.
func openSource(cfg config.SokobanConfig) (*levelSource, error) {
	src := &levelSource{close: func() error { return nil }}
	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols

	switch {
	case cfg.Database.Path != "":
		store, err := storage.Open(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		src.catalog = store
		src.name = cfg.Database.Path
		src.close = store.Close
	case cfg.Levels.Dir != "":
		src.catalog = levels.NewDirStore(cfg.Levels.Dir, rows, cols)
		src.name = cfg.Levels.Dir
		src.dir = cfg.Levels.Dir
	default:
		src.catalog = levels.Embedded(rows, cols)
		src.name = "built-in"
	}

	infos, err := src.catalog.List()
	if err != nil {
		src.close()
		return nil, fmt.Errorf("failed to list levels of %s: %w", src.name, err)
	}
	if len(infos) == 0 {
		src.close()
		return nil, errors.New("no levels in " + src.name)
	}
	src.infos = infos
	src.last = consecutive(infos)
	if src.last == 0 {
		src.last = cfg.Levels.Last
	}
	return src, nil
}

// consecutive returns N when levels 1..N are all present.
func consecutive(infos []levels.Info) int {
	have := make(map[int]bool, len(infos))
	for _, info := range infos {
		have[info.Number] = true
	}
	n := 0
	for have[n+1] {
		n++
	}
	return n
}

// names maps level numbers to their display names.
func (s *levelSource) names() map[int]string {
	m := make(map[int]string, len(s.infos))
	for _, info := range s.infos {
		if info.Name != "" {
			m[info.Number] = info.Name
		}
	}
	return m
}

// newGame creates a game over the source.
func (s *levelSource) newGame(cfg config.SokobanConfig, start int, logger *log.Logger) *sokoban.Game {
	return sokoban.New(s.catalog, sokoban.Options{
		Rows:         cfg.Grid.Rows,
		Cols:         cfg.Grid.Cols,
		LastLevel:    s.last,
		StartLevel:   start,
		AdvanceDelay: cfg.Levels.AdvanceDelay,
		LevelNames:   s.names(),
		Logger:       logger,
	})
}

// playable returns the levels a game over the source can reach: 1..last.
// Levels past a gap in the numbering stay listed by `levels` but are not offered.
func (s *levelSource) playable() []levels.Info {
	out := make([]levels.Info, 0, len(s.infos))
	for _, info := range s.infos {
		if info.Number >= 1 && info.Number <= s.last {
			out = append(out, info)
		}
	}
	return out
}
