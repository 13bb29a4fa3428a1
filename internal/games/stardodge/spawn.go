package stardodge

import (
	"math"

	"github.com/vovakirdan/stardodge/internal/core"
)

const (
	directionAttempts = 8
	placementAttempts = 16
)

func spawnTimerSystem(w *World, in *Input) {
	if !w.Timer.Advance(in.Elapsed) {
		return
	}
	margin := 0.0
	if w.params.InsetPickupSpawn {
		margin = w.params.PickupRadius
	}
	w.spawn(KindPickup, w.randomPoint(margin), core.Vec2{}) //nolint:errcheck // pickups never conflict
}

// randomPoint returns a uniform position in the arena inset by margin.
func (w *World) randomPoint(margin float64) core.Vec2 {
	xlo, xhi := core.Span(w.arena.W, margin)
	ylo, yhi := core.Span(w.arena.H, margin)
	return core.Vec2{
		X: xlo + w.rng.Float64()*(xhi-xlo),
		Y: ylo + w.rng.Float64()*(yhi-ylo),
	}
}

// randomDirection draws each component from [-1, 1) and normalizes. A draw
// that is too short to normalize reliably is retried; the diagonal is the
// last resort.
func (w *World) randomDirection() core.Vec2 {
	for range directionAttempts {
		d := core.V(w.rng.Float64()*2-1, w.rng.Float64()*2-1)
		if d.LenSq() > 1e-6 {
			return d.NormalizeOrZero()
		}
	}
	return core.V(math.Sqrt2/2, math.Sqrt2/2)
}

// hazardPosition picks a spawn point, keeping SafeDistance from the actor
// when configured. After placementAttempts misses the last draw is used.
func (w *World) hazardPosition(actor core.Vec2) core.Vec2 {
	p := w.randomPoint(0)
	if w.params.SafeDistance <= 0 {
		return p
	}
	safe := sq(w.params.SafeDistance)
	for i := 1; i < placementAttempts && p.DistSq(actor) < safe; i++ {
		p = w.randomPoint(0)
	}
	return p
}
