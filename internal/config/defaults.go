package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/stardodge.yaml
var defaultStarDodgeYAML []byte

// DefaultStarDodgeConfig returns the default Star Dodge configuration.
func DefaultStarDodgeConfig() StarDodgeConfig {
	return StarDodgeConfig{
		Actor: ActorConfig{
			Speed:  500,
			Radius: 32, // 64px sprite
		},
		Hazards: HazardConfig{
			Count:        5,
			Speed:        250,
			Radius:       32,
			BounceMargin: 1,
			SafeDistance: 0,
		},
		Pickups: PickupConfig{
			Count:       10,
			Radius:      15, // 30px sprite
			SpawnPeriod: time.Second,
			InsetSpawn:  false,
		},
		Arena: ArenaConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Input: InputConfig{
			Hold: 300 * time.Millisecond,
		},
		Ledger: LedgerConfig{
			Identity: "Player",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultStarDodgeYAML
}
