package stardodge

import "time"

// SpawnTimer is a repeating countdown. It fires at most once per Advance:
// when a single step spans several periods the extra periods are dropped
// rather than replayed.
type SpawnTimer struct {
	period    time.Duration
	remaining time.Duration
	finished  bool
}

// NewSpawnTimer creates an armed timer. Non-positive periods are raised to
// one nanosecond so the countdown always terminates.
func NewSpawnTimer(period time.Duration) *SpawnTimer {
	period = max(period, time.Nanosecond)
	return &SpawnTimer{period: period, remaining: period}
}

// Advance counts down by dt and reports whether the timer fired. On firing
// the overshoot carries into the next period.
func (t *SpawnTimer) Advance(dt time.Duration) bool {
	dt = max(dt, 0)
	if dt < t.remaining {
		t.remaining -= dt
		t.finished = false
		return false
	}

	overshoot := dt - t.remaining
	t.remaining = t.period - overshoot%t.period
	t.finished = true
	return true
}

// Finished reports whether the last Advance fired.
func (t *SpawnTimer) Finished() bool {
	return t.finished
}

// Remaining returns the time left until the next firing.
func (t *SpawnTimer) Remaining() time.Duration {
	return t.remaining
}

// Period returns the configured period.
func (t *SpawnTimer) Period() time.Duration {
	return t.period
}

// Reset re-arms the timer to a full period.
func (t *SpawnTimer) Reset() {
	t.remaining = t.period
	t.finished = false
}
