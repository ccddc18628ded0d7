package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/sokoban/internal/storage"
)

// defaultDBPath is used by import when neither --db nor the config names one.
const defaultDBPath = "~/.sokoban/levels.db"

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Copy a level directory into the SQLite catalog",
	Long: `Validate every level of a pack directory and copy it into the SQLite
catalog. Levels already in the catalog are replaced.

The directory layout is:
  levels/level<N>.txt
  solutions/solution<N>.txt
  pack.yaml (optional level names)

Examples:
  sokoban import ./my-pack
  sokoban import ./my-pack --db ./levels.db`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runImport(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	logger, closeLog := newLogger("sokoban", true)
	defer closeLog()

	src := levels.NewDirStore(args[0], cfg.Grid.Rows, cfg.Grid.Cols)
	results, err := levels.ValidateAll(src, cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed := printResults(results); failed > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d invalid level(s); nothing imported\n", failed)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	n, err := store.Import(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("levels imported", "count", n, "from", args[0], "db", dbPath)
	fmt.Printf("Imported %d level(s) into %s\n", n, dbPath)
}
