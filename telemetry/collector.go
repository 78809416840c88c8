// Package telemetry provides windowed simulation statistics, performance
// timing and CSV run output.
package telemetry

import "github.com/pthm-cable/ballpit/components"

// Collector accumulates events within tick windows and produces WindowStats.
// A nil *Collector ignores every call.
type Collector struct {
	windowTicks int32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	collisions       int
	regularMonster   int
	regularRepellent int
	pruned           int
}

// NewCollector creates a new stats collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// RecordCollision records one overlapping pair.
func (c *Collector) RecordCollision(a, b components.Kind) {
	if c == nil {
		return
	}
	c.collisions++

	if b == components.KindRegular {
		a, b = b, a
	}
	if a != components.KindRegular {
		return
	}
	switch b {
	case components.KindMonster:
		c.regularMonster++
	case components.KindRepellent:
		c.regularRepellent++
	}
}

// RecordPrune records a regular ball removed at the end of a tick.
func (c *Collector) RecordPrune() {
	if c == nil {
		return
	}
	c.pruned++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	if c == nil {
		return false
	}
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the population at currentTick and
// resets counters for the next window.
func (c *Collector) Flush(currentTick int32, balls []components.BallState) WindowStats {
	stats := WindowStats{
		WindowStartTick:  c.windowStartTick,
		WindowEndTick:    currentTick,
		Collisions:       c.collisions,
		RegularMonster:   c.regularMonster,
		RegularRepellent: c.regularRepellent,
		Pruned:           c.pruned,
	}

	radii := make([]float64, 0, len(balls))
	speeds := make([]float64, 0, len(balls))
	for _, b := range balls {
		switch b.Kind {
		case components.KindRegular:
			stats.RegularCount++
		case components.KindMonster:
			stats.MonsterCount++
		case components.KindRepellent:
			stats.RepellentCount++
		}
		radii = append(radii, b.Radius)
		speeds = append(speeds, Speed(b.Vel))
	}

	stats.RadiusMean, stats.RadiusStd, stats.RadiusP50 = ComputeRadiusStats(radii)
	stats.SpeedMean = Mean(speeds)

	c.windowStartTick = currentTick
	c.collisions = 0
	c.regularMonster = 0
	c.regularRepellent = 0
	c.pruned = 0

	return stats
}
