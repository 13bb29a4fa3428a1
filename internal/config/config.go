// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// StarDodgeConfig contains all configuration for Star Dodge.
type StarDodgeConfig struct {
	Actor   ActorConfig  `yaml:"actor" toml:"actor"`
	Hazards HazardConfig `yaml:"hazards" toml:"hazards"`
	Pickups PickupConfig `yaml:"pickups" toml:"pickups"`
	Arena   ArenaConfig  `yaml:"arena" toml:"arena"`
	Input   InputConfig  `yaml:"input" toml:"input"`
	Ledger  LedgerConfig `yaml:"ledger" toml:"ledger"`
}

// ActorConfig defines the player-controlled ball.
type ActorConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`   // Plane units per second
	Radius float64 `yaml:"radius" toml:"radius"` // Collision radius
}

// HazardConfig defines the roaming balls that end the round.
type HazardConfig struct {
	Count        int     `yaml:"count" toml:"count"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	Radius       float64 `yaml:"radius" toml:"radius"`
	BounceMargin float64 `yaml:"bounce_margin" toml:"bounce_margin"` // Extra inset applied after a wall bounce
	SafeDistance float64 `yaml:"safe_distance" toml:"safe_distance"` // Minimum spawn distance from the actor, 0 = off
}

// PickupConfig defines the collectible stars.
type PickupConfig struct {
	Count       int           `yaml:"count" toml:"count"` // Spawned at round start
	Radius      float64       `yaml:"radius" toml:"radius"`
	SpawnPeriod time.Duration `yaml:"spawn_period" toml:"spawn_period"`
	InsetSpawn  bool          `yaml:"inset_spawn" toml:"inset_spawn"` // Keep timed spawns a radius away from the edges
}

// ArenaConfig maps terminal cells onto plane units.
type ArenaConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// InputConfig tunes held-key emulation in terminals.
type InputConfig struct {
	Hold time.Duration `yaml:"hold" toml:"hold"` // How long a key press counts as held
}

// LedgerConfig defines how finished rounds are recorded.
type LedgerConfig struct {
	Identity string `yaml:"identity" toml:"identity"`
}

// Validate checks that every value is usable by the simulation.
func (c StarDodgeConfig) Validate() error {
	switch {
	case c.Actor.Radius <= 0:
		return fmt.Errorf("%w: actor.radius must be positive, got %v", ErrInvalid, c.Actor.Radius)
	case c.Actor.Speed < 0:
		return fmt.Errorf("%w: actor.speed must not be negative, got %v", ErrInvalid, c.Actor.Speed)
	case c.Hazards.Radius <= 0:
		return fmt.Errorf("%w: hazards.radius must be positive, got %v", ErrInvalid, c.Hazards.Radius)
	case c.Hazards.Speed < 0:
		return fmt.Errorf("%w: hazards.speed must not be negative, got %v", ErrInvalid, c.Hazards.Speed)
	case c.Hazards.Count < 0:
		return fmt.Errorf("%w: hazards.count must not be negative, got %d", ErrInvalid, c.Hazards.Count)
	case c.Hazards.BounceMargin < 0:
		return fmt.Errorf("%w: hazards.bounce_margin must not be negative, got %v", ErrInvalid, c.Hazards.BounceMargin)
	case c.Hazards.SafeDistance < 0:
		return fmt.Errorf("%w: hazards.safe_distance must not be negative, got %v", ErrInvalid, c.Hazards.SafeDistance)
	case c.Pickups.Radius <= 0:
		return fmt.Errorf("%w: pickups.radius must be positive, got %v", ErrInvalid, c.Pickups.Radius)
	case c.Pickups.Count < 0:
		return fmt.Errorf("%w: pickups.count must not be negative, got %d", ErrInvalid, c.Pickups.Count)
	case c.Pickups.SpawnPeriod <= 0:
		return fmt.Errorf("%w: pickups.spawn_period must be positive, got %v", ErrInvalid, c.Pickups.SpawnPeriod)
	case c.Arena.CellWidth <= 0 || c.Arena.CellHeight <= 0:
		return fmt.Errorf("%w: arena cell size must be positive, got %vx%v", ErrInvalid, c.Arena.CellWidth, c.Arena.CellHeight)
	case c.Input.Hold < 0:
		return fmt.Errorf("%w: input.hold must not be negative, got %v", ErrInvalid, c.Input.Hold)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *StarDodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hazards.Count = 3
		cfg.Hazards.Speed *= 0.8
		cfg.Pickups.SpawnPeriod = cfg.Pickups.SpawnPeriod * 3 / 4
	case DifficultyHard:
		cfg.Hazards.Count = 8
		cfg.Hazards.Speed *= 1.3
		cfg.Pickups.SpawnPeriod = cfg.Pickups.SpawnPeriod * 3 / 2
	}
}
