package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/ballpit/components"
	"github.com/pthm-cable/ballpit/config"
)

// TrajectoryRecord is one ball at the end of one tick.
type TrajectoryRecord struct {
	Tick   int32   `csv:"tick"`
	ID     uint32  `csv:"id"`
	Kind   string  `csv:"kind"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
	DX     float64 `csv:"dx"`
	DY     float64 `csv:"dy"`
	Radius float64 `csv:"radius"`
}

// OutputManager handles structured run output with CSV logging.
// A nil *OutputManager means output is disabled; every method is then a no-op.
type OutputManager struct {
	dir            string
	telemetryFile  *os.File
	perfFile       *os.File
	trajectoryFile *os.File

	// Track if headers have been written
	telemetryHeaderWritten  bool
	perfHeaderWritten       bool
	trajectoryHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled). trajectory.csv is only
// created when trace is set.
func NewOutputManager(dir string, trace bool) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	if trace {
		f, err = os.Create(filepath.Join(dir, "trajectory.csv"))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating trajectory.csv: %w", err)
		}
		om.trajectoryFile = f
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// writeRecords marshals records to f, with a header only on the first call.
func writeRecords(f *os.File, headerWritten *bool, records interface{}) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.telemetryFile, &om.telemetryHeaderWritten, []WindowStats{stats}); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.perfFile, &om.perfHeaderWritten, []PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Tracing reports whether trajectory.csv is being written.
func (om *OutputManager) Tracing() bool {
	return om != nil && om.trajectoryFile != nil
}

// WriteTrajectory appends the state of every ball at tick to trajectory.csv.
func (om *OutputManager) WriteTrajectory(tick int32, balls []components.BallState) error {
	if !om.Tracing() || len(balls) == 0 {
		return nil
	}

	records := make([]TrajectoryRecord, len(balls))
	for i, b := range balls {
		records[i] = TrajectoryRecord{
			Tick:   tick,
			ID:     b.ID,
			Kind:   b.Kind.String(),
			X:      b.Pos.X,
			Y:      b.Pos.Y,
			DX:     b.Vel.X,
			DY:     b.Vel.Y,
			Radius: b.Radius,
		}
	}

	if err := writeRecords(om.trajectoryFile, &om.trajectoryHeaderWritten, records); err != nil {
		return fmt.Errorf("writing trajectory: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.telemetryFile, om.perfFile, om.trajectoryFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
