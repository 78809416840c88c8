// Package game owns the ball population and steps the simulation.
package game

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ballpit/components"
	"github.com/pthm-cable/ballpit/config"
	"github.com/pthm-cable/ballpit/systems"
	"github.com/pthm-cable/ballpit/telemetry"
)

// Population holds the initial ball count per kind.
type Population struct {
	Regular, Monster, Repellent int
}

// Total returns the number of balls across all kinds.
func (p Population) Total() int {
	return p.Regular + p.Monster + p.Repellent
}

// SpawnRanges holds the ranges random balls are drawn from.
type SpawnRanges struct {
	MinRadius int     // inclusive
	MaxRadius int     // exclusive
	MaxSpeed  float64 // dx, dy in [-MaxSpeed, MaxSpeed)
}

// DefaultSpawnRanges matches the embedded config defaults.
var DefaultSpawnRanges = SpawnRanges{MinRadius: 10, MaxRadius: 20, MaxSpeed: 1}

// fitSpawn returns spawn ranges usable on b. Ranges without a positive
// minimum radius or with an empty radius interval fall back to the defaults,
// and radii are capped so every disk fits inside the canvas. ok is false
// when not even a radius-1 disk fits.
func fitSpawn(sp SpawnRanges, b systems.Bounds) (fitted SpawnRanges, ok bool) {
	if sp.MinRadius < 1 || sp.MaxRadius <= sp.MinRadius {
		sp = DefaultSpawnRanges
	}

	// MaxRadius is exclusive: the largest disk, radius MaxRadius-1, needs a
	// side of 2*(MaxRadius-1).
	limit := int(math.Floor(math.Min(b.Width, b.Height)/2)) + 1
	if sp.MaxRadius > limit {
		sp.MaxRadius = limit
	}
	if sp.MinRadius >= sp.MaxRadius {
		sp.MinRadius = sp.MaxRadius - 1
	}
	return sp, sp.MinRadius >= 1
}

// Options configures a Simulation.
type Options struct {
	Bounds     systems.Bounds
	Population Population
	Spawn      SpawnRanges
	Seed       int64
	Rules      systems.Rules // nil = systems.InertRules

	// Optional telemetry. All may be nil.
	Collector *telemetry.Collector
	Perf      *telemetry.PerfCollector
	Output    *telemetry.OutputManager
	LogStats  bool
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config, seed int64) (Options, error) {
	rules, err := systems.RulesByName(cfg.Rules)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Bounds: systems.Bounds{Width: cfg.Derived.CanvasW, Height: cfg.Derived.CanvasH},
		Population: Population{
			Regular:   cfg.Population.Regular,
			Monster:   cfg.Population.Monster,
			Repellent: cfg.Population.Repellent,
		},
		Spawn: SpawnRanges{
			MinRadius: cfg.Spawn.MinRadius,
			MaxRadius: cfg.Spawn.MaxRadius,
			MaxSpeed:  cfg.Spawn.MaxSpeed,
		},
		Seed:  seed,
		Rules: rules,
	}, nil
}

// Simulation holds the complete simulation state. It is not safe for
// concurrent use; the owner must not call Tick from more than one goroutine.
type Simulation struct {
	world *ecs.World
	rng   *rand.Rand

	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Ball]

	// order is the population in spawn order. Pair processing walks it by
	// index, so indices stay stable until the prune pass compacts it.
	order []ecs.Entity

	physics *systems.PhysicsSystem
	rules   systems.Rules
	spawn   SpawnRanges

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	tick   int32
	nextID uint32
}

// NewSimulation creates a simulation and spawns its initial population.
func NewSimulation(opts Options) *Simulation {
	world := ecs.NewWorld()

	rules := opts.Rules
	if rules == nil {
		rules = systems.InertRules{}
	}
	spawn, ok := fitSpawn(opts.Spawn, opts.Bounds)
	if spawn != opts.Spawn && opts.Spawn != (SpawnRanges{}) {
		slog.Warn("spawn ranges adjusted to fit the canvas", "requested", opts.Spawn, "using", spawn)
	}
	population := opts.Population
	if !ok {
		slog.Warn("canvas too small for any ball, spawning none", "bounds", opts.Bounds)
		population = Population{}
	}

	s := &Simulation{
		world:     world,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		mapper:    ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Ball](world),
		physics:   systems.NewPhysicsSystem(world, opts.Bounds),
		rules:     rules,
		spawn:     spawn,
		collector: opts.Collector,
		perf:      opts.Perf,
		output:    opts.Output,
		logStats:  opts.LogStats,
	}

	s.spawnPopulation(population)

	return s
}

// Tick advances the simulation by exactly one step.
func (s *Simulation) Tick() {
	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhaseMotion)
	s.physics.Update()

	s.perf.StartPhase(telemetry.PhaseCollision)
	s.resolveCollisions()

	s.perf.StartPhase(telemetry.PhasePrune)
	s.prune()

	s.tick++

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.flushTelemetry()

	s.perf.EndTick()
}

// resolveCollisions runs the response rules on every overlapping pair.
// Each pair is stored before the next one is tested, so a ball changed by
// an earlier pair is seen in its changed state by later pairs.
func (s *Simulation) resolveCollisions() {
	n := len(s.order)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a := s.state(s.order[i])
			b := s.state(s.order[j])

			if !systems.Overlaps(a, b) {
				continue
			}

			nextA := s.rules.Respond(a, b)
			nextB := s.rules.Respond(b, a)
			s.store(s.order[i], nextA)
			s.store(s.order[j], nextB)

			s.collector.RecordCollision(a.Kind, b.Kind)
		}
	}
}

// state reads the components of e.
func (s *Simulation) state(e ecs.Entity) components.BallState {
	return components.StateOf(s.mapper.Get(e))
}

// store writes the mutable parts of st back to e. Kind, ID and color are fixed.
func (s *Simulation) store(e ecs.Entity, st components.BallState) {
	pos, vel, body, _ := s.mapper.Get(e)
	*pos = st.Pos
	*vel = st.Vel
	body.Radius = st.Radius
}

// TickCount returns the number of completed ticks.
func (s *Simulation) TickCount() int32 {
	return s.tick
}

// Len returns the number of live balls.
func (s *Simulation) Len() int {
	return len(s.order)
}

// Bounds returns the canvas.
func (s *Simulation) Bounds() systems.Bounds {
	return s.physics.Bounds()
}

// Counts returns the number of live balls per kind.
func (s *Simulation) Counts() Population {
	var p Population
	for _, e := range s.order {
		_, _, _, ball := s.mapper.Get(e)
		switch ball.Kind {
		case components.KindRegular:
			p.Regular++
		case components.KindMonster:
			p.Monster++
		case components.KindRepellent:
			p.Repellent++
		}
	}
	return p
}

// States returns a copy of every ball in population order.
func (s *Simulation) States() []components.BallState {
	out := make([]components.BallState, len(s.order))
	for i, e := range s.order {
		out[i] = s.state(e)
	}
	return out
}
