package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stardodge/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"s", runeKey("s"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey("d"), core.ActionRight},
		{"p", runeKey("p"), core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Map(tt.msg); got != tt.want {
				t.Errorf("Map(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(300 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionPause, t0) // ignored, not a direction

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(100*time.Millisecond))
	if !frame.Has(core.ActionLeft) || frame.Has(core.ActionPause) {
		t.Errorf("frame at 100ms = %v", frame.Actions)
	}

	// A repeat extends the window.
	h.Press(core.ActionLeft, t0.Add(250*time.Millisecond))
	if !h.Held(core.ActionLeft, t0.Add(500*time.Millisecond)) {
		t.Error("repeat should keep the key held")
	}

	frame = core.NewInputFrame()
	h.Apply(&frame, t0.Add(600*time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("key should be released after the hold window")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionDown, t0.Add(10*time.Millisecond))

	now := t0.Add(20 * time.Millisecond)
	if h.Held(core.ActionUp, now) {
		t.Error("pressing down should release up")
	}
	if !h.Held(core.ActionDown, now) || !h.Held(core.ActionRight, now) {
		t.Error("down and right should be held")
	}

	h.Release()
	if h.Held(core.ActionDown, now) {
		t.Error("Release should forget every press")
	}
}
