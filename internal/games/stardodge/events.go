package stardodge

// GameOverEvent is published once when the actor is destroyed.
type GameOverEvent struct {
	FinalScore int
}

// ListenerID identifies one subscription on an EventBus.
type ListenerID int

// EventBus is an ordered queue of GameOverEvents with broadcast semantics:
// every subscriber sees every event published after it subscribed exactly
// once, and events are discarded once all subscribers have drained them.
type EventBus struct {
	events  []GameOverEvent
	base    uint64 // Sequence number of events[0]
	cursors map[ListenerID]uint64
	nextID  ListenerID
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		cursors: make(map[ListenerID]uint64),
		nextID:  1,
	}
}

// Subscribe registers a new listener. It only observes events published
// after this call.
func (b *EventBus) Subscribe() ListenerID {
	id := b.nextID
	b.nextID++
	b.cursors[id] = b.end()
	return id
}

// Unsubscribe removes a listener. Events it alone was holding are released.
func (b *EventBus) Unsubscribe(id ListenerID) {
	delete(b.cursors, id)
	b.compact()
}

// Publish appends an event.
func (b *EventBus) Publish(ev GameOverEvent) {
	b.events = append(b.events, ev)
}

// Drain returns the events the listener has not seen yet, oldest first.
// Unknown listeners get nil.
func (b *EventBus) Drain(id ListenerID) []GameOverEvent {
	cur, ok := b.cursors[id]
	if !ok {
		return nil
	}
	end := b.end()
	if cur >= end {
		return nil
	}

	out := make([]GameOverEvent, end-cur)
	copy(out, b.events[cur-b.base:])
	b.cursors[id] = end
	b.compact()
	return out
}

// Pending returns the number of events still held for at least one listener.
func (b *EventBus) Pending() int {
	return len(b.events)
}

// Listeners returns the number of subscriptions.
func (b *EventBus) Listeners() int {
	return len(b.cursors)
}

// dropUnobserved discards events when nobody is subscribed to read them.
func (b *EventBus) dropUnobserved() {
	if len(b.cursors) == 0 {
		b.base = b.end()
		b.events = b.events[:0]
	}
}

func (b *EventBus) end() uint64 {
	return b.base + uint64(len(b.events))
}

// compact drops the prefix every listener has already read.
func (b *EventBus) compact() {
	if len(b.cursors) == 0 {
		return
	}
	low := b.end()
	for _, c := range b.cursors {
		low = min(low, c)
	}
	n := int(low - b.base)
	if n == 0 {
		return
	}
	b.events = append(b.events[:0], b.events[n:]...)
	b.base = low
}
