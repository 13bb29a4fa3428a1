// Package stardodge implements Star Dodge: steer a ball around bouncing
// hazards while collecting the stars that keep appearing on the field.
package stardodge

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
)

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the tuning. Without it the built-in defaults are used.
func WithConfig(cfg config.StarDodgeConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLogger sets the logger for round events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithIdentity overrides the name recorded in the high score ledger.
func WithIdentity(identity string) Option {
	return func(g *Game) { g.cfg.Ledger.Identity = identity }
}

// WithRecord seeds the best score shown in the HUD, e.g. from storage.
func WithRecord(score int) Option {
	return func(g *Game) { g.record = score }
}

// Game adapts the simulation World to the terminal host.
type Game struct {
	cfg     config.StarDodgeConfig
	world   *World
	runtime core.RuntimeConfig
	view    core.Viewport
	paused  bool
	record  int
	last    Frame
	logger  *log.Logger
	onRound []func(HighScoreEntry)
}

// New creates a Game. Reset must be called before the first Step.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultStarDodgeConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.world = NewWorld(ParamsFromConfig(g.cfg), rand.New(rand.NewSource(0)))
	g.world.AddListener(g.roundEnded)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "stardodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Dodge"
}

// OnRoundEnd registers fn to run after each finished round is added to the
// ledger.
func (g *Game) OnRoundEnd(fn func(HighScoreEntry)) {
	g.onRound = append(g.onRound, fn)
}

func (g *Game) roundEnded(ev GameOverEvent) {
	entry := HighScoreEntry{Identity: g.world.Params().Identity, Score: ev.FinalScore}
	g.record = max(g.record, ev.FinalScore)
	g.logger.Info("game over", "identity", entry.Identity, "score", entry.Score, "rounds", g.world.Ledger.Len())
	for _, fn := range g.onRound {
		fn(entry)
	}
}

// Reset starts a new round. The ledger survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	g.world.SetRand(rand.New(rand.NewSource(cfg.Seed)))
	g.view = g.viewFor(cfg.ScreenW, cfg.ScreenH)
	arena := g.view.Arena()
	g.last = g.world.ResetRound(arena)
	g.logger.Debug("round started", "arena_w", arena.W, "arena_h", arena.H, "seed", cfg.Seed)
}

// Step advances the simulation by the elapsed wall time.
func (g *Game) Step(in core.TickInput) core.StepResult {
	if in.Input.Has(core.ActionPause) && g.world.ActorAlive() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.ScreenW > 0 && in.ScreenH > 0 {
		g.view = g.viewFor(in.ScreenW, in.ScreenH)
	}

	g.last = g.world.Tick(Input{
		Elapsed: in.Elapsed,
		Arena:   g.view.Arena(),
		Up:      in.Input.Has(core.ActionUp),
		Down:    in.Input.Has(core.ActionDown),
		Left:    in.Input.Has(core.ActionLeft),
		Right:   in.Input.Has(core.ActionRight),
	})
	if g.last.ScoreChanged {
		g.logger.Debug("star collected", "score", g.last.Score)
	}

	return core.StepResult{State: g.State(), Signals: g.last.Signals}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: !g.world.ActorAlive(),
		Paused:   g.paused,
	}
}

// World exposes the simulation.
func (g *Game) World() *World {
	return g.world
}

// LastFrame returns the outcome of the most recent tick or reset.
func (g *Game) LastFrame() Frame {
	return g.last
}

// Ledger returns every finished round of this session.
func (g *Game) Ledger() []HighScoreEntry {
	return g.world.Ledger.Entries()
}

// Best returns the highest score known to this game.
func (g *Game) Best() int {
	best := g.record
	if e, ok := g.world.Ledger.Best(); ok {
		best = max(best, e.Score)
	}
	return best
}

// viewFor maps a terminal area onto plane units.
func (g *Game) viewFor(cols, rows int) core.Viewport {
	return core.NewViewport(cols, rows, g.cfg.Arena.CellWidth, g.cfg.Arena.CellHeight)
}
