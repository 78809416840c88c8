package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/ballpit/components"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population counts at window end
	RegularCount   int `csv:"regular"`
	MonsterCount   int `csv:"monster"`
	RepellentCount int `csv:"repellent"`

	// Events during window
	Collisions       int `csv:"collisions"`
	RegularMonster   int `csv:"regular_monster"`
	RegularRepellent int `csv:"regular_repellent"`
	Pruned           int `csv:"pruned"`

	// Distributions sampled at window end
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`
	RadiusP50  float64 `csv:"radius_p50"`
	SpeedMean  float64 `csv:"speed_mean"`
}

// Speed returns the magnitude of a velocity.
func Speed(v components.Velocity) float64 {
	return math.Hypot(v.X, v.Y)
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// ComputeRadiusStats calculates mean, population standard deviation and median.
func ComputeRadiusStats(values []float64) (mean, std, p50 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return mean, std, p50
}

// LogStats logs the window stats.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("regular", s.RegularCount),
		slog.Int("monster", s.MonsterCount),
		slog.Int("repellent", s.RepellentCount),
		slog.Int("collisions", s.Collisions),
		slog.Int("regular_monster", s.RegularMonster),
		slog.Int("regular_repellent", s.RegularRepellent),
		slog.Int("pruned", s.Pruned),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Float64("radius_std", s.RadiusStd),
		slog.Float64("speed_mean", s.SpeedMean),
	)
}
