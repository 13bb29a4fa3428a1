package stardodge

import (
	"testing"
	"time"
)

func TestSpawnTimerAdvance(t *testing.T) {
	tests := []struct {
		name          string
		steps         []time.Duration
		wantFires     int
		wantRemaining time.Duration
	}{
		{"below period", []time.Duration{400 * time.Millisecond}, 0, 600 * time.Millisecond},
		{"exact period", []time.Duration{time.Second}, 1, time.Second},
		{"overshoot carries", []time.Duration{400 * time.Millisecond, 700 * time.Millisecond}, 1, 900 * time.Millisecond},
		{"coarse tick fires once", []time.Duration{2500 * time.Millisecond}, 1, 500 * time.Millisecond},
		{"negative is zero", []time.Duration{-time.Second}, 0, time.Second},
		{"many small steps", []time.Duration{
			300 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond,
			300 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond,
			300 * time.Millisecond,
		}, 2, 900 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewSpawnTimer(time.Second)
			fires := 0
			for _, dt := range tt.steps {
				if timer.Advance(dt) {
					fires++
				}
			}
			if fires != tt.wantFires {
				t.Errorf("fires = %d, want %d", fires, tt.wantFires)
			}
			if timer.Remaining() != tt.wantRemaining {
				t.Errorf("remaining = %v, want %v", timer.Remaining(), tt.wantRemaining)
			}
		})
	}
}

func TestSpawnTimerNeverNegative(t *testing.T) {
	timer := NewSpawnTimer(250 * time.Millisecond)
	for i := range 100 {
		timer.Advance(time.Duration(i*37) * time.Millisecond)
		if r := timer.Remaining(); r <= 0 || r > timer.Period() {
			t.Fatalf("step %d: remaining = %v out of (0, period]", i, r)
		}
	}
}

func TestSpawnTimerReset(t *testing.T) {
	timer := NewSpawnTimer(time.Second)
	timer.Advance(1500 * time.Millisecond)
	if !timer.Finished() {
		t.Error("timer should report finished after firing")
	}

	timer.Reset()
	if timer.Finished() || timer.Remaining() != time.Second {
		t.Errorf("after reset: finished=%v remaining=%v", timer.Finished(), timer.Remaining())
	}
}
