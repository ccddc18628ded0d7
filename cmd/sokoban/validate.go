package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sokoban/internal/games/sokoban/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check every level of a pack",
	Long: `Load every level and solution of a pack and check that it can be
played: right size, only known cells, exactly one player and at least as
many boxes as targets. Exits non-zero if any level fails.

Without a directory the configured source is checked.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	var catalog levels.Catalog
	if len(args) == 1 {
		catalog = levels.NewDirStore(args[0], cfg.Grid.Rows, cfg.Grid.Cols)
	} else {
		src, err := openSource(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer src.close()
		catalog = src.catalog
	}

	results, err := levels.ValidateAll(catalog, cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no levels found")
		os.Exit(1)
	}
	if failed := printResults(results); failed > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d of %d level(s) invalid\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Printf("All %d level(s) valid\n", len(results))
}

// printResults prints one line per level and returns the failure count.
func printResults(results []levels.Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("  FAIL %3d  %s: %v\n", r.Level.Number, r.Level.Title(), r.Err)
			continue
		}
		fmt.Printf("  ok   %3d  %s\n", r.Level.Number, r.Level.Title())
	}
	return failed
}
