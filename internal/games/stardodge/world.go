package stardodge

import (
	"time"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
)

// Params are the fixed tuning values of a round.
type Params struct {
	ActorSpeed  float64
	ActorRadius float64

	HazardCount  int
	HazardSpeed  float64
	HazardRadius float64
	BounceMargin float64
	SafeDistance float64

	PickupCount      int
	PickupRadius     float64
	SpawnPeriod      time.Duration
	InsetPickupSpawn bool

	Identity string
}

// DefaultParams returns the built-in tuning.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultStarDodgeConfig())
}

// ParamsFromConfig extracts simulation parameters from a loaded config.
func ParamsFromConfig(cfg config.StarDodgeConfig) Params {
	identity := cfg.Ledger.Identity
	if identity == "" {
		identity = DefaultIdentity
	}
	return Params{
		ActorSpeed:       cfg.Actor.Speed,
		ActorRadius:      cfg.Actor.Radius,
		HazardCount:      cfg.Hazards.Count,
		HazardSpeed:      cfg.Hazards.Speed,
		HazardRadius:     cfg.Hazards.Radius,
		BounceMargin:     cfg.Hazards.BounceMargin,
		SafeDistance:     cfg.Hazards.SafeDistance,
		PickupCount:      cfg.Pickups.Count,
		PickupRadius:     cfg.Pickups.Radius,
		SpawnPeriod:      cfg.Pickups.SpawnPeriod,
		InsetPickupSpawn: cfg.Pickups.InsetSpawn,
		Identity:         identity,
	}
}

// Rand is the random source used for spawns. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Input is everything the world reads from its host in one tick.
type Input struct {
	Elapsed time.Duration
	Arena   core.Arena

	Up, Down, Left, Right bool
}

// SpawnRequest asks the host to create a visual for a new entity.
type SpawnRequest struct {
	ID   EntityID
	Kind Kind
	Pos  core.Vec2
	Dir  core.Vec2
}

// Frame is the outcome of one tick.
type Frame struct {
	Tick         uint64
	Spawned      []SpawnRequest
	Removed      []EntityID
	Signals      []core.Signal
	Score        int
	ScoreChanged bool
	RoundOver    bool
}

// Listener receives GameOverEvents during the dispatch stage.
type Listener func(GameOverEvent)

type listener struct {
	id ListenerID
	fn Listener
}

// World is the complete simulation state. Systems receive it by pointer and
// communicate only through the registry and the event bus.
type World struct {
	Registry *Registry
	Score    int
	Timer    *SpawnTimer
	Ledger   *HighScoreLedger
	Bus      *EventBus

	params    Params
	rng       Rand
	arena     core.Arena
	watch     ScoreWatch
	listeners []listener
	frame     Frame
	tick      uint64
}

// NewWorld creates a world with no entities. The ledger listener is
// registered first so it observes every round.
func NewWorld(p Params, rng Rand) *World {
	if p.Identity == "" {
		p.Identity = DefaultIdentity
	}
	w := &World{
		Registry: NewRegistry(),
		Timer:    NewSpawnTimer(p.SpawnPeriod),
		Ledger:   &HighScoreLedger{},
		Bus:      NewEventBus(),
		params:   p,
		rng:      rng,
	}
	w.AddListener(func(ev GameOverEvent) {
		w.Ledger.Append(HighScoreEntry{Identity: w.params.Identity, Score: ev.FinalScore})
	})
	return w
}

// Params returns the world's tuning.
func (w *World) Params() Params {
	return w.params
}

// Arena returns the arena seen by the last tick or reset.
func (w *World) Arena() core.Arena {
	return w.arena
}

// SetRand replaces the random source, e.g. when reseeding between rounds.
func (w *World) SetRand(rng Rand) {
	w.rng = rng
}

// SetIdentity changes the name recorded for future ledger entries.
func (w *World) SetIdentity(identity string) {
	if identity == "" {
		identity = DefaultIdentity
	}
	w.params.Identity = identity
}

// AddListener subscribes fn to GameOverEvents. Listeners run in registration
// order.
func (w *World) AddListener(fn Listener) ListenerID {
	id := w.Bus.Subscribe()
	w.listeners = append(w.listeners, listener{id: id, fn: fn})
	return id
}

// RemoveListener unsubscribes a listener.
func (w *World) RemoveListener(id ListenerID) {
	for i, l := range w.listeners {
		if l.id == id {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			break
		}
	}
	w.Bus.Unsubscribe(id)
}

// ActorAlive reports whether the round is still active.
func (w *World) ActorAlive() bool {
	_, ok := w.Registry.Actor()
	return ok
}

// ResetRound clears the field and starts a new round in arena. Score and
// timer restart; the ledger and pending events are kept.
func (w *World) ResetRound(arena core.Arena) Frame {
	w.arena = arena
	w.frame = Frame{Tick: w.tick}

	w.Registry.Each(KindActor, w.removeEntity)
	w.Registry.Each(KindHazard, w.removeEntity)
	w.Registry.Each(KindPickup, w.removeEntity)

	w.Score = 0
	w.watch.Reset(0)
	w.Timer.Reset()

	actorPos := arena.Center()
	w.spawn(KindActor, actorPos, core.Vec2{}) //nolint:errcheck // registry was just cleared
	for range w.params.HazardCount {
		w.spawn(KindHazard, w.hazardPosition(actorPos), w.randomDirection()) //nolint:errcheck
	}
	for range w.params.PickupCount {
		w.spawn(KindPickup, w.randomPoint(0), core.Vec2{}) //nolint:errcheck
	}

	w.frame.Score = 0
	return w.frame
}

type stage struct {
	name string
	run  func(w *World, in *Input)
}

// stages run in this order every tick.
var stages = []stage{
	{"movement", moveSystem},
	{"boundary", boundarySystem},
	{"collision", collisionSystem},
	{"spawn", spawnTimerSystem},
	{"dispatch", dispatchSystem},
}

// Tick advances the simulation by in.Elapsed.
func (w *World) Tick(in Input) Frame {
	in.Elapsed = max(in.Elapsed, 0)
	w.arena = in.Arena
	w.tick++
	w.frame = Frame{Tick: w.tick}

	for _, s := range stages {
		s.run(w, &in)
	}

	w.frame.RoundOver = !w.ActorAlive()
	return w.frame
}

func (w *World) spawn(kind Kind, pos, dir core.Vec2) (EntityID, error) {
	id, err := w.Registry.Spawn(kind, pos, dir)
	if err != nil {
		return 0, err
	}
	w.frame.Spawned = append(w.frame.Spawned, SpawnRequest{ID: id, Kind: kind, Pos: pos, Dir: dir})
	return id, nil
}

func (w *World) remove(id EntityID) bool {
	if !w.Registry.Destroy(id) {
		return false
	}
	w.frame.Removed = append(w.frame.Removed, id)
	return true
}

func (w *World) removeEntity(e *Entity) {
	w.remove(e.ID)
}

func (w *World) signal(s core.Signal) {
	w.frame.Signals = append(w.frame.Signals, s)
}
