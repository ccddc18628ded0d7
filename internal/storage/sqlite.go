// Package storage provides a SQLite-backed level catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/sokoban/internal/games/sokoban/levels"
)

// Store manages the SQLite database connection for the level catalog.
type Store struct {
	db *sql.DB
}

// LevelRecord is one stored level.
type LevelRecord struct {
	Number     int
	Name       string
	Grid       [][]int
	Solution   [][]int
	ImportedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			number INTEGER PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			grid TEXT NOT NULL,
			solution TEXT NOT NULL,
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevel inserts or replaces a level.
func (s *Store) SaveLevel(rec LevelRecord) error {
	if rec.Number < 1 {
		return fmt.Errorf("storage: invalid level number %d", rec.Number)
	}
	_, err := s.db.Exec(
		`INSERT INTO levels (number, name, grid, solution, imported_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(number) DO UPDATE SET
		   name = excluded.name,
		   grid = excluded.grid,
		   solution = excluded.solution,
		   imported_at = excluded.imported_at`,
		rec.Number, rec.Name, levels.Format(rec.Grid), levels.Format(rec.Solution),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %d: %w", rec.Number, err)
	}
	return nil
}

// LoadLevelGrid implements core.LevelStore.
func (s *Store) LoadLevelGrid(level int) ([][]int, error) {
	return s.loadColumn(level, "grid")
}

// LoadSolutionMask implements core.LevelStore.
func (s *Store) LoadSolutionMask(level int) ([][]int, error) {
	return s.loadColumn(level, "solution")
}

// loadColumn reads and parses the grid or solution text of a level.
// column is one of two fixed names, never user input.
func (s *Store) loadColumn(level int, column string) ([][]int, error) {
	var text string
	err := s.db.QueryRow("SELECT "+column+" FROM levels WHERE number = ?", level).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: level %d not in catalog", levels.ErrLevelNotFound, level)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level %d: %w", level, err)
	}
	return levels.Parse(strings.NewReader(text), fmt.Sprintf("db:%s%d", column, level))
}

// Level returns a full stored level.
func (s *Store) Level(level int) (*LevelRecord, error) {
	var rec LevelRecord
	var gridText, solText string
	var importedAt any

	err := s.db.QueryRow(
		`SELECT number, name, grid, solution, imported_at FROM levels WHERE number = ?`,
		level,
	).Scan(&rec.Number, &rec.Name, &gridText, &solText, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: level %d not in catalog", levels.ErrLevelNotFound, level)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level %d: %w", level, err)
	}

	if rec.Grid, err = levels.Parse(strings.NewReader(gridText), "db:grid"); err != nil {
		return nil, err
	}
	if rec.Solution, err = levels.Parse(strings.NewReader(solText), "db:solution"); err != nil {
		return nil, err
	}
	rec.ImportedAt = parseTime(importedAt)
	return &rec, nil
}

// List implements levels.Catalog.
func (s *Store) List() ([]levels.Info, error) {
	rows, err := s.db.Query(`SELECT number, name FROM levels ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var infos []levels.Info
	for rows.Next() {
		var info levels.Info
		if err := rows.Scan(&info.Number, &info.Name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// Count returns the number of stored levels.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM levels`).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count levels: %w", err)
	}
	return n, nil
}

// Import copies every level of src into the catalog in one transaction.
// Levels that fail to load abort the import. Returns the number imported.
func (s *Store) Import(src *levels.FSStore) (int, error) {
	infos, err := src.List()
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO levels (number, name, grid, solution, imported_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(number) DO UPDATE SET
		   name = excluded.name,
		   grid = excluded.grid,
		   solution = excluded.solution,
		   imported_at = excluded.imported_at`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare import: %w", err)
	}
	defer stmt.Close()

	for _, info := range infos {
		grid, err := src.LoadLevelGrid(info.Number)
		if err != nil {
			return 0, err
		}
		sol, err := src.LoadSolutionMask(info.Number)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.Exec(info.Number, info.Name, levels.Format(grid), levels.Format(sol)); err != nil {
			return 0, fmt.Errorf("storage: cannot import level %d: %w", info.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return len(infos), nil
}

// Clear deletes every stored level.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM levels"); err != nil {
		return fmt.Errorf("storage: cannot clear levels: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var (
	_ core.LevelStore = (*Store)(nil)
	_ levels.Catalog  = (*Store)(nil)
)
