package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardodge/internal/core"
)

const (
	// DefaultHold is how long a direction stays held after its last press.
	DefaultHold = 300 * time.Millisecond

	flashDuration = 600 * time.Millisecond
)

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for host events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithHold sets the held-key window.
func WithHold(d time.Duration) Option {
	return func(m *Model) { m.held = NewHeldKeys(d) }
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// withClock replaces time.Now for key handling.
func withClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// Model is the Bubble Tea model for running a game. The bottom row is
// reserved for the status and help line.
type Model struct {
	game      core.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool
	keys      KeyMap
	held      *HeldKeys
	help      help.Model
	logger    *log.Logger
	now       func() time.Time
	pending   core.InputFrame // One-shot actions for the next tick
	state     core.GameState
	lastTick  time.Time
	flash     core.Signal
	flashEnd  time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game. cfg.ScreenH
// is the full terminal height.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = playHeight(cfg.ScreenH)

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		fixedSeed: fixed,
		keys:      DefaultKeyMap(),
		held:      NewHeldKeys(DefaultHold),
		help:      help.New(),
		logger:    log.New(io.Discard),
		now:       time.Now,
		pending:   core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	return m
}

func playHeight(rows int) int {
	return max(rows-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Map(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case isDirection(action):
		m.held.Press(action, m.now())
	case action == core.ActionRestart:
		if m.state.GameOver {
			m.pending.Set(action)
		}
	case action != core.ActionNone:
		m.pending.Set(action)
	}
	return m, nil
}

// handleResize adapts the arena to the new terminal size. The round
// continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = playHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.logger.Debug("terminal resized", "cols", m.config.ScreenW, "rows", m.config.ScreenH)
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := elapsed(m.lastTick, now)
	m.lastTick = now

	in := m.pending
	m.pending = core.NewInputFrame()

	if in.Has(core.ActionRestart) && m.state.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.held.Release()
		m.flash = 0
		return m, tickCmd(m.config.TickRate)
	}

	m.held.Apply(&in, now)
	result := m.game.Step(core.TickInput{
		Elapsed: dt,
		ScreenW: m.screen.Width(),
		ScreenH: m.screen.Height(),
		Input:   in,
	})
	m.state = result.State

	for _, s := range result.Signals {
		m.showSignal(s, now)
	}
	if m.flash != 0 && now.After(m.flashEnd) {
		m.flash = 0
	}

	return m, tickCmd(m.config.TickRate)
}

// showSignal flashes s unless a more important signal is still showing.
func (m *Model) showSignal(s core.Signal, now time.Time) {
	if m.flash != 0 && now.Before(m.flashEnd) && s < m.flash {
		return
	}
	m.flash = s
	m.flashEnd = now.Add(flashDuration)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	line := m.help.View(m.keys)
	if m.flash != 0 {
		line = renderSignal(m.flash) + " " + line
	}
	return line
}

// Run starts the Bubble Tea program for game in the current terminal.
func Run(game core.Game, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(NewModel(game, cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
