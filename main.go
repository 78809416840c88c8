package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ballpit/camera"
	"github.com/pthm-cable/ballpit/config"
	"github.com/pthm-cable/ballpit/game"
	"github.com/pthm-cable/ballpit/renderer"
	"github.com/pthm-cable/ballpit/telemetry"
	"github.com/pthm-cable/ballpit/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses args, runs the simulation and returns the process exit code.
// Deferred cleanup always runs before the caller exits.
func run(args []string) int {
	fs := flag.NewFlagSet("ballpit", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := fs.Bool("headless", false, "Run without graphics")
	logStats := fs.Bool("log-stats", false, "Output stats via slog")
	outputDir := fs.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	trace := fs.Bool("trace", false, "Write every ball of every tick to trajectory.csv (needs -output-dir)")
	seed := fs.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := fs.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts, err := game.OptionsFromConfig(cfg, rngSeed)
	if err != nil {
		slog.Error("invalid options", "error", err)
		return 1
	}

	if *trace && *outputDir == "" {
		slog.Warn("-trace has no effect without -output-dir")
	}

	output, err := telemetry.NewOutputManager(*outputDir, *trace)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		return 1
	}
	defer func() {
		if err := output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()

	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	opts.Collector = telemetry.NewCollector(cfg.Telemetry.StatsWindowTicks)
	opts.Perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	opts.Output = output
	opts.LogStats = *logStats

	if *headless {
		sim := game.NewSimulation(opts)

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"balls", sim.Len(),
			"rules", cfg.Rules.Mode,
			"max_ticks", *maxTicks,
		)

		for *maxTicks <= 0 || int(sim.TickCount()) < *maxTicks {
			sim.Tick()
		}
		slog.Info("max ticks reached", "tick", sim.TickCount(), "balls", sim.Len())
		return 0
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Ball Pit")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	sim := game.NewSimulation(opts)
	driver := game.NewDriver(cfg.Derived.TickInterval, cfg.Driver.MaxCatchUp)
	balls := renderer.NewBallRenderer(sim.Bounds())
	hud := ui.NewHUD()
	cam := camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), float32(cfg.Derived.CanvasW), float32(cfg.Derived.CanvasH))

	slog.Info("starting simulation", "seed", rngSeed, "balls", sim.Len(), "rules", cfg.Rules.Mode)

	for !rl.WindowShouldClose() {
		opts.Perf.RecordFrame()

		ui.HandleInput(hud, cam)

		step := hud.TakeStep()
		if hud.Paused() {
			driver.Reset()
			if step {
				sim.Tick()
			}
		} else {
			elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(hud.Speed()) * float64(time.Second))
			driver.Advance(elapsed, sim.Tick)
		}

		counts := sim.Counts()

		rl.BeginDrawing()
		balls.Draw(sim.Balls(), cam)
		hud.Draw(ui.HUDData{
			Title:          "Ball Pit",
			Tick:           sim.TickCount(),
			RegularCount:   counts.Regular,
			MonsterCount:   counts.Monster,
			RepellentCount: counts.Repellent,
			Dropped:        driver.Dropped(),
			FPS:            rl.GetFPS(),
			AvgTick:        opts.Perf.Stats().AvgTickDuration,
		})
		rl.EndDrawing()

		if *maxTicks > 0 && int(sim.TickCount()) >= *maxTicks {
			break
		}
	}
	return 0
}
