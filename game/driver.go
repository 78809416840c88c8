package game

import "time"

// Driver turns elapsed wall-clock time into a whole number of ticks at a
// fixed interval. When a frame arrives late it runs at most maxCatchUp ticks
// and drops the rest of the backlog.
type Driver struct {
	interval   time.Duration
	maxCatchUp int
	acc        time.Duration
	dropped    int
}

// NewDriver creates a driver ticking every interval.
func NewDriver(interval time.Duration, maxCatchUp int) *Driver {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Driver{interval: interval, maxCatchUp: maxCatchUp}
}

// Advance adds elapsed to the accumulator and calls step once per whole
// interval. It returns the number of steps run.
func (d *Driver) Advance(elapsed time.Duration, step func()) int {
	if elapsed > 0 {
		d.acc += elapsed
	}

	n := 0
	for d.acc >= d.interval && n < d.maxCatchUp {
		step()
		d.acc -= d.interval
		n++
	}

	if d.acc >= d.interval {
		skipped := int(d.acc / d.interval)
		d.dropped += skipped
		d.acc -= time.Duration(skipped) * d.interval
	}

	return n
}

// Dropped returns how many ticks were skipped under load so far.
func (d *Driver) Dropped() int {
	return d.dropped
}

// Interval returns the tick period.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Reset clears the accumulated time, e.g. after unpausing.
func (d *Driver) Reset() {
	d.acc = 0
}
