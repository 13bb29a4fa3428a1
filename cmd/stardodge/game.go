package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/games/stardodge"
	"github.com/vovakirdan/stardodge/internal/storage"
)

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.StarDodgeConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.StarDodgeConfig{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.StarDodgeConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newGame builds a game whose finished rounds are mirrored into store.
// store may be nil.
func newGame(cfg config.StarDodgeConfig, identity string, store *storage.Store, logger *log.Logger) *stardodge.Game {
	opts := []stardodge.Option{
		stardodge.WithConfig(cfg),
		stardodge.WithLogger(logger),
	}
	if identity != "" {
		opts = append(opts, stardodge.WithIdentity(identity))
	}
	if store != nil {
		if best, err := store.HighScore(); err != nil {
			logger.Warn("cannot read high score", "error", err)
		} else {
			opts = append(opts, stardodge.WithRecord(best))
		}
	}

	game := stardodge.New(opts...)
	if store != nil {
		game.OnRoundEnd(func(e stardodge.HighScoreEntry) {
			if _, err := store.SaveScore(e.Identity, e.Score); err != nil {
				logger.Warn("cannot save score", "identity", e.Identity, "score", e.Score, "error", err)
			}
		})
	}
	return game
}
