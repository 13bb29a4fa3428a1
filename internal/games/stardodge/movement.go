package stardodge

import "github.com/vovakirdan/stardodge/internal/core"

// inputDirection turns the pressed keys into a unit vector. Opposing keys
// cancel; no keys gives the zero vector.
func inputDirection(in *Input) core.Vec2 {
	var d core.Vec2
	if in.Up {
		d.Y++
	}
	if in.Down {
		d.Y--
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d.NormalizeOrZero()
}

func moveSystem(w *World, in *Input) {
	dt := in.Elapsed.Seconds()

	if actor, ok := w.Registry.Actor(); ok {
		actor.Pos = actor.Pos.Add(inputDirection(in).Scale(w.params.ActorSpeed * dt))
	}

	step := w.params.HazardSpeed * dt
	w.Registry.Each(KindHazard, func(e *Entity) {
		e.Pos = e.Pos.Add(e.Dir.Scale(step))
	})
}
