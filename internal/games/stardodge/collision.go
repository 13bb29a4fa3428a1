package stardodge

import "github.com/vovakirdan/stardodge/internal/core"

func collisionSystem(w *World, _ *Input) {
	actor, ok := w.Registry.Actor()
	if !ok {
		return
	}
	id, pos := actor.ID, actor.Pos

	hit := sq(w.params.ActorRadius + w.params.HazardRadius)
	w.Registry.Each(KindHazard, func(e *Entity) {
		if !w.Registry.Alive(id) {
			return
		}
		if e.Pos.DistSq(pos) <= hit {
			w.destroyActor(id)
		}
	})
	if !w.Registry.Alive(id) {
		return
	}

	reach := sq(w.params.ActorRadius + w.params.PickupRadius)
	w.Registry.Each(KindPickup, func(e *Entity) {
		if e.Pos.DistSq(pos) > reach {
			return
		}
		if w.remove(e.ID) {
			w.Score++
			w.signal(core.SignalCollect)
		}
	})
}

// destroyActor ends the round. The event is published only if the actor was
// actually removed.
func (w *World) destroyActor(id EntityID) {
	if !w.remove(id) {
		return
	}
	w.Bus.Publish(GameOverEvent{FinalScore: w.Score})
	w.signal(core.SignalExplosion)
}

func sq(v float64) float64 { return v * v }
