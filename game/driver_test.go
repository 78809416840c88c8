package game

import (
	"testing"
	"time"
)

func TestDriverAdvance(t *testing.T) {
	tests := []struct {
		name        string
		frames      []time.Duration
		wantSteps   int
		wantDropped int
	}{
		{"below interval", []time.Duration{30 * time.Millisecond}, 0, 0},
		{"accumulates", []time.Duration{30 * time.Millisecond, 30 * time.Millisecond}, 1, 0},
		{"exact multiple", []time.Duration{150 * time.Millisecond}, 3, 0},
		{"caps catch-up", []time.Duration{500 * time.Millisecond}, 5, 5},
		{"negative ignored", []time.Duration{-time.Second, 50 * time.Millisecond}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDriver(50*time.Millisecond, 5)
			steps := 0
			for _, f := range tt.frames {
				d.Advance(f, func() { steps++ })
			}
			if steps != tt.wantSteps {
				t.Errorf("steps = %d, want %d", steps, tt.wantSteps)
			}
			if d.Dropped() != tt.wantDropped {
				t.Errorf("dropped = %d, want %d", d.Dropped(), tt.wantDropped)
			}
		})
	}
}

func TestDriverKeepsRemainderAfterDrop(t *testing.T) {
	d := NewDriver(50*time.Millisecond, 2)
	steps := 0
	step := func() { steps++ }

	// 2 run, 2 dropped, 20ms carried over.
	d.Advance(220*time.Millisecond, step)
	if steps != 2 || d.Dropped() != 2 {
		t.Fatalf("steps=%d dropped=%d, want 2/2", steps, d.Dropped())
	}

	d.Advance(30*time.Millisecond, step)
	if steps != 3 {
		t.Errorf("steps = %d, want 3 after remainder completes an interval", steps)
	}
}

func TestDriverDrivesSimulation(t *testing.T) {
	sim := NewSimulation(Options{Bounds: canvas, Population: Population{Regular: 2}, Seed: 5})
	d := NewDriver(50*time.Millisecond, 5)

	for i := 0; i < 10; i++ {
		d.Advance(25*time.Millisecond, sim.Tick)
	}
	if sim.TickCount() != 5 {
		t.Errorf("TickCount() = %d, want 5", sim.TickCount())
	}

	d.Advance(40*time.Millisecond, sim.Tick)
	d.Reset()
	d.Advance(20*time.Millisecond, sim.Tick)
	if sim.TickCount() != 5 {
		t.Errorf("TickCount() = %d after reset, want 5", sim.TickCount())
	}
}

func TestNewDriverDefaults(t *testing.T) {
	d := NewDriver(0, 0)
	if d.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, want 50ms", d.Interval())
	}
}
