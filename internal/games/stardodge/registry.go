package stardodge

import (
	"errors"

	"github.com/vovakirdan/stardodge/internal/core"
)

var (
	// ErrActorExists is returned when a second actor is spawned into a round.
	ErrActorExists = errors.New("stardodge: actor already exists")
	// ErrUnknownKind is returned when spawning an entity with an invalid kind.
	ErrUnknownKind = errors.New("stardodge: unknown entity kind")
)

type slot struct {
	entity     Entity
	generation uint32
	alive      bool
}

// Registry owns every entity in the round. Slots are reused through a free
// list; iteration visits live entities in slot order.
type Registry struct {
	slots    []slot
	freeList []uint32
	counts   [KindPickup + 1]int
	actor    EntityID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		slots:    make([]slot, 0, 64),
		freeList: make([]uint32, 0, 16),
	}
}

// Spawn creates an entity and returns its ID.
func (r *Registry) Spawn(kind Kind, pos, dir core.Vec2) (EntityID, error) {
	if kind < KindActor || kind > KindPickup {
		return 0, ErrUnknownKind
	}
	if kind == KindActor && !r.actor.IsZero() {
		return 0, ErrActorExists
	}

	var idx uint32
	if n := len(r.freeList); n > 0 {
		idx = r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{generation: 1})
	}

	s := &r.slots[idx]
	id := newEntityID(idx, s.generation)
	s.entity = Entity{ID: id, Kind: kind, Pos: pos, Dir: dir}
	s.alive = true
	r.counts[kind]++
	if kind == KindActor {
		r.actor = id
	}
	return id, nil
}

// Destroy removes the entity. It returns false when the ID is stale or was
// never issued, so destroying twice is a no-op.
func (r *Registry) Destroy(id EntityID) bool {
	s := r.lookup(id)
	if s == nil {
		return false
	}
	s.alive = false
	s.generation++
	r.counts[s.entity.Kind]--
	if id == r.actor {
		r.actor = 0
	}
	r.freeList = append(r.freeList, id.Index())
	return true
}

// Get returns the live entity for id.
func (r *Registry) Get(id EntityID) (*Entity, bool) {
	s := r.lookup(id)
	if s == nil {
		return nil, false
	}
	return &s.entity, true
}

// Alive reports whether id refers to a live entity.
func (r *Registry) Alive(id EntityID) bool {
	return r.lookup(id) != nil
}

// Actor returns the actor, or false when the round is over or not started.
func (r *Registry) Actor() (*Entity, bool) {
	if r.actor.IsZero() {
		return nil, false
	}
	return r.Get(r.actor)
}

// Count returns the number of live entities of a kind.
func (r *Registry) Count(kind Kind) int {
	if int(kind) >= len(r.counts) {
		return 0
	}
	return r.counts[kind]
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	n := 0
	for _, c := range r.counts {
		n += c
	}
	return n
}

// Each calls fn for every live entity of kind in slot order. fn may destroy
// the entity it is given but must not spawn.
func (r *Registry) Each(kind Kind, fn func(e *Entity)) {
	for i := range r.slots {
		s := &r.slots[i]
		if s.alive && s.entity.Kind == kind {
			fn(&s.entity)
		}
	}
}

// Clear destroys every entity. Issued IDs stay invalid.
func (r *Registry) Clear() {
	for i := range r.slots {
		if r.slots[i].alive {
			r.Destroy(r.slots[i].entity.ID)
		}
	}
}

func (r *Registry) lookup(id EntityID) *slot {
	idx := id.Index()
	if id.IsZero() || int(idx) >= len(r.slots) {
		return nil
	}
	s := &r.slots[idx]
	if !s.alive || s.generation != id.Generation() {
		return nil
	}
	return s
}
