package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/platform/tui"
	"github.com/vovakirdan/stardodge/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round in the current terminal.

Controls:
  Arrows/WASD  - Move (hold)
  P/Space      - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit

Difficulty options:
  easy    - Fewer, slower hazards and more frequent stars
  normal  - Config values as loaded
  hard    - More, faster hazards and rarer stars

Examples:
  stardodge play
  stardodge play --difficulty hard
  stardodge play --config ./my-stardodge.yaml --name alice`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (.yaml or .toml)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name recorded with your scores")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger(flagLogLevel, flagLogFile, true)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	gameCfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score database", "error", err)
		store = nil
	}

	game := newGame(gameCfg, flagName, store, logger)
	runErr := tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, tui.WithLogger(logger), tui.WithHold(gameCfg.Input.Hold))

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}

	if best, ok := game.World().Ledger.Best(); ok {
		fmt.Printf("Rounds played: %d  Best: %d\n", game.World().Ledger.Len(), best.Score)
	}
}
