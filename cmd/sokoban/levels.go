package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the configured source",
	Long: `Shows the levels of the built-in pack, of --levels DIR, or of the
SQLite catalog given with --db.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	src, err := openSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer src.close()

	fmt.Printf("Levels in %s:\n", src.name)
	fmt.Println()

	fmt.Printf("  %3s  %s\n", "#", "Name")
	fmt.Printf("  %3s  %s\n", "-", "----")
	for _, info := range src.infos {
		fmt.Printf("  %3d  %s\n", info.Number, info.Title())
	}

	fmt.Println()
	if src.last < len(src.infos) {
		fmt.Printf("Only levels 1..%d are played; the numbering has a gap.\n", src.last)
	}
	fmt.Println("Run 'sokoban play --level <n>' to start at a level.")
}
