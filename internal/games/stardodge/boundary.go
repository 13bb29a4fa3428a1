package stardodge

import "github.com/vovakirdan/stardodge/internal/core"

func boundarySystem(w *World, _ *Input) {
	if actor, ok := w.Registry.Actor(); ok {
		actor.Pos = w.arena.Clamp(actor.Pos, w.params.ActorRadius)
	}

	w.Registry.Each(KindHazard, func(e *Entity) {
		if bounce(e, w.arena, w.params.HazardRadius, w.params.BounceMargin) {
			w.signal(core.SignalBounce)
		}
	})
}

// bounce flips each direction component whose axis left the arena inset by
// radius, then pulls the entity back inside with an extra margin so it does
// not re-trigger next tick. It reports whether anything flipped.
func bounce(e *Entity, arena core.Arena, radius, margin float64) bool {
	outX, outY := arena.Outside(e.Pos, radius)
	if !outX && !outY {
		return false
	}
	if outX {
		e.Dir.X = -e.Dir.X
	}
	if outY {
		e.Dir.Y = -e.Dir.Y
	}
	e.Pos = arena.Clamp(e.Pos, radius+margin)
	return true
}
