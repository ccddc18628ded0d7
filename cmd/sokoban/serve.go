package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sokoban/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sokoban SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, starting at a level picker.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sokoban/host_key

Examples:
  sokoban serve                           # Listen on :23234 with auto-generated key
  sokoban serve --ssh :2222               # Listen on port 2222
  sokoban serve --host-key ./my_host_key  # Use specific host key
  sokoban serve --db ./levels.db          # Serve levels from a catalog

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := newLogger("sokoban-ssh", true)
	defer closeLog()

	src, err := openSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer src.close()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = cfg.Runtime.TickRate
	srvCfg.Keys = tui.NewKeyMap(cfg.Keys)
	srvCfg.Levels = src.playable()
	srvCfg.Logger = logger
	srvCfg.NewGame = func(start int, l *log.Logger) tui.Game {
		return src.newGame(cfg, start, l)
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting sokoban SSH server on %s (%d levels from %s)\n", server.Addr(), len(srvCfg.Levels), src.name)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
