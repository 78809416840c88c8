// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Rule set names accepted by rules.mode.
const (
	RulesInert   = "inert"
	RulesFeeding = "feeding"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Population PopulationConfig `yaml:"population"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Driver     DriverConfig     `yaml:"driver"`
	Rules      RulesConfig      `yaml:"rules"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CanvasConfig holds the simulated area. Zero means use the screen size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PopulationConfig holds the initial ball count per kind.
type PopulationConfig struct {
	Regular   int `yaml:"regular"`
	Monster   int `yaml:"monster"`
	Repellent int `yaml:"repellent"`
}

// SpawnConfig holds the ranges random balls are drawn from.
type SpawnConfig struct {
	MinRadius int     `yaml:"min_radius"` // inclusive
	MaxRadius int     `yaml:"max_radius"` // exclusive
	MaxSpeed  float64 `yaml:"max_speed"`
}

// DriverConfig holds the host loop cadence.
type DriverConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
	MaxCatchUp     int `yaml:"max_catch_up"`
}

// RulesConfig selects the collision response rule set.
type RulesConfig struct {
	Mode        string  `yaml:"mode"`
	MonsterBite float64 `yaml:"monster_bite"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowTicks    int `yaml:"stats_window_ticks"`
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CanvasW      float64       // Effective canvas width
	CanvasH      float64       // Effective canvas height
	TickInterval time.Duration // Driver.TickIntervalMS as a duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CanvasW = c.Canvas.Width
	if c.Derived.CanvasW == 0 {
		c.Derived.CanvasW = float64(c.Screen.Width)
	}
	c.Derived.CanvasH = c.Canvas.Height
	if c.Derived.CanvasH == 0 {
		c.Derived.CanvasH = float64(c.Screen.Height)
	}
	c.Derived.TickInterval = time.Duration(c.Driver.TickIntervalMS) * time.Millisecond
}

// Validate reports every setting that would make the simulation ill-defined.
func (c *Config) Validate() error {
	var errs []error

	p := c.Population
	if p.Regular < 0 || p.Monster < 0 || p.Repellent < 0 {
		errs = append(errs, fmt.Errorf("population counts must be >= 0, got %d/%d/%d", p.Regular, p.Monster, p.Repellent))
	}

	s := c.Spawn
	if s.MinRadius <= 0 {
		errs = append(errs, fmt.Errorf("spawn.min_radius must be > 0, got %d", s.MinRadius))
	}
	if s.MaxRadius <= s.MinRadius {
		errs = append(errs, fmt.Errorf("spawn.max_radius (%d) must exceed spawn.min_radius (%d)", s.MaxRadius, s.MinRadius))
	}
	if s.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("spawn.max_speed must be >= 0, got %g", s.MaxSpeed))
	}

	// Every disk must fit fully inside the canvas at spawn time. max_radius
	// is exclusive, so the largest disk has radius max_radius-1.
	minSide := float64(2 * (s.MaxRadius - 1))
	if c.Derived.CanvasW < minSide || c.Derived.CanvasH < minSide {
		errs = append(errs, fmt.Errorf("canvas %gx%g too small for max_radius %d", c.Derived.CanvasW, c.Derived.CanvasH, s.MaxRadius))
	}

	if c.Driver.TickIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("driver.tick_interval_ms must be > 0, got %d", c.Driver.TickIntervalMS))
	}
	if c.Driver.MaxCatchUp < 1 {
		errs = append(errs, fmt.Errorf("driver.max_catch_up must be >= 1, got %d", c.Driver.MaxCatchUp))
	}

	switch c.Rules.Mode {
	case RulesInert, RulesFeeding:
	default:
		errs = append(errs, fmt.Errorf("unknown rules.mode %q", c.Rules.Mode))
	}

	if c.Telemetry.StatsWindowTicks < 1 {
		errs = append(errs, fmt.Errorf("telemetry.stats_window_ticks must be >= 1, got %d", c.Telemetry.StatsWindowTicks))
	}

	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
