package game

import (
	"log/slog"
)

// flushTelemetry writes the trajectory for the finished tick and, when a
// stats window closes, logs and records the window.
func (s *Simulation) flushTelemetry() {
	if s.output.Tracing() {
		if err := s.output.WriteTrajectory(s.tick, s.States()); err != nil {
			slog.Error("failed to write trajectory", "error", err)
		}
	}

	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	stats := s.collector.Flush(s.tick, s.States())
	perfStats := s.perf.Stats()

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.output != nil {
		if err := s.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := s.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
