package stardodge

import "github.com/vovakirdan/stardodge/internal/core"

// Kind is the role an entity plays in the round.
type Kind uint8

const (
	KindActor Kind = iota + 1
	KindHazard
	KindPickup
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindHazard:
		return "hazard"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// EntityID encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. Generations start at 1, so the zero ID never
// refers to a live entity, and they increment on destroy to invalidate stale
// references.
type EntityID uint64

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

// Entity is one simulated object.
type Entity struct {
	ID   EntityID
	Kind Kind
	Pos  core.Vec2
	Dir  core.Vec2 // Unit direction, hazards only
	Z    float64   // Draw order hint, not used by the simulation
}

// Radius returns the collision radius for the entity's kind.
func (p Params) Radius(k Kind) float64 {
	switch k {
	case KindActor:
		return p.ActorRadius
	case KindHazard:
		return p.HazardRadius
	case KindPickup:
		return p.PickupRadius
	default:
		return 0
	}
}
