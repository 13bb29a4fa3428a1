// Package tui hosts games in a terminal through Bubble Tea, locally or over SSH.
// It owns the frame clock, key handling, and screen output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxElapsed caps the time fed to a single step so a stalled terminal does
// not teleport entities across the arena.
const MaxElapsed = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsed returns the time since the previous tick, clamped to [0, MaxElapsed].
// The first tick has no predecessor and yields zero.
func elapsed(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	return min(max(now.Sub(prev), 0), MaxElapsed)
}
