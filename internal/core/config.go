package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInput is everything the host supplies for one simulation tick.
type TickInput struct {
	Elapsed time.Duration // Wall time since the previous tick
	ScreenW int           // Current play area width in characters
	ScreenH int           // Current play area height in characters
	Input   InputFrame
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Signal is a payload-free side-effect tag raised by the simulation for the
// audio collaborator.
type Signal uint8

const (
	SignalBounce Signal = iota + 1
	SignalCollect
	SignalExplosion
)

// String returns the signal tag.
func (s Signal) String() string {
	switch s {
	case SignalBounce:
		return "bounce"
	case SignalCollect:
		return "collect"
	case SignalExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any signals that occurred.
type StepResult struct {
	State   GameState
	Signals []Signal
}
