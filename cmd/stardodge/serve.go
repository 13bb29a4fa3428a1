package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/platform/tui"
	"github.com/vovakirdan/stardodge/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Star Dodge SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own round; the SSH user name is recorded
with the score. All users share the same score database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.stardodge/host_key

Examples:
  stardodge serve                           # Listen on :23234
  stardodge serve --ssh :2222               # Listen on port 2222
  stardodge serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this long")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config (.yaml or .toml)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger(flagLogLevel, flagLogFile, false)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	gameCfg, err := loadConfig(flagServeConfig, "")
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
		Hold:        gameCfg.Input.Hold,
	}
	newSessionGame := func(identity string) (core.Game, error) {
		return newGame(gameCfg, identity, store, logger.With("user", identity)), nil
	}

	server, err := tui.NewSSHServer(cfg, newSessionGame, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Star Dodge SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
