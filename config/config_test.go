package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Derived.CanvasW != 800 || cfg.Derived.CanvasH != 600 {
		t.Errorf("canvas = %gx%g, want 800x600", cfg.Derived.CanvasW, cfg.Derived.CanvasH)
	}
	if cfg.Population.Regular != 10 || cfg.Population.Monster != 2 || cfg.Population.Repellent != 3 {
		t.Errorf("population = %+v, want 10/2/3", cfg.Population)
	}
	if cfg.Spawn.MinRadius != 10 || cfg.Spawn.MaxRadius != 20 {
		t.Errorf("spawn radius range = [%d,%d), want [10,20)", cfg.Spawn.MinRadius, cfg.Spawn.MaxRadius)
	}
	if cfg.Derived.TickInterval != 50*time.Millisecond {
		t.Errorf("tick interval = %v, want 50ms", cfg.Derived.TickInterval)
	}
	if cfg.Rules.Mode != RulesInert {
		t.Errorf("rules.mode = %q, want %q", cfg.Rules.Mode, RulesInert)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "canvas:\n  width: 1024\npopulation:\n  monster: 5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Derived.CanvasW != 1024 {
		t.Errorf("canvas width = %g, want 1024", cfg.Derived.CanvasW)
	}
	if cfg.Derived.CanvasH != 600 {
		t.Errorf("canvas height = %g, want screen height 600", cfg.Derived.CanvasH)
	}
	if cfg.Population.Monster != 5 {
		t.Errorf("monster count = %d, want 5", cfg.Population.Monster)
	}
	if cfg.Population.Regular != 10 {
		t.Errorf("regular count = %d, want default 10", cfg.Population.Regular)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"negative count", func(c *Config) { c.Population.Regular = -1 }, "population counts"},
		{"zero min radius", func(c *Config) { c.Spawn.MinRadius = 0 }, "min_radius"},
		{"empty radius range", func(c *Config) { c.Spawn.MaxRadius = c.Spawn.MinRadius }, "max_radius"},
		{"tiny canvas", func(c *Config) { c.Derived.CanvasW = 30 }, "too small"},
		{"canvas one short of largest disk", func(c *Config) { c.Derived.CanvasH = 37 }, "too small"},
		{"canvas fits largest disk exactly", func(c *Config) { c.Derived.CanvasW, c.Derived.CanvasH = 38, 38 }, ""},
		{"zero interval", func(c *Config) { c.Driver.TickIntervalMS = 0 }, "tick_interval_ms"},
		{"unknown rules", func(c *Config) { c.Rules.Mode = "gravity" }, "rules.mode"},
		{"zero window", func(c *Config) { c.Telemetry.StatsWindowTicks = 0 }, "stats_window_ticks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Population.Repellent = 7

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if loaded.Population.Repellent != 7 {
		t.Errorf("repellent = %d, want 7", loaded.Population.Repellent)
	}
}
