// Package systems contains ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ballpit/components"
)

// Bounds represents the canvas rectangle [0,Width] x [0,Height].
type Bounds struct {
	Width, Height float64
}

// ContainsDisk reports whether the whole disk lies inside the bounds.
func (b Bounds) ContainsDisk(x, y, radius float64) bool {
	return x-radius >= 0 && x+radius <= b.Width &&
		y-radius >= 0 && y+radius <= b.Height
}

// PhysicsSystem moves balls and reflects them off the canvas walls.
type PhysicsSystem struct {
	filter ecs.Filter4[components.Position, components.Velocity, components.Body, components.Ball]
	bounds Bounds
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, bounds Bounds) *PhysicsSystem {
	return &PhysicsSystem{
		filter: *ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Ball](w),
		bounds: bounds,
	}
}

// Bounds returns the canvas the system reflects against.
func (s *PhysicsSystem) Bounds() Bounds {
	return s.bounds
}

// Update advances every non-monster ball by one tick.
func (s *PhysicsSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, body, ball := query.Get()

		if ball.Kind == components.KindMonster {
			continue
		}

		Advance(pos, vel, body.Radius, s.bounds)
	}
}

// Advance applies one step of motion. The wall checks look at the moved
// position and only flip the velocity sign; the position is never clamped,
// so a ball can overlap a wall for a tick before it travels back.
func Advance(pos *components.Position, vel *components.Velocity, radius float64, b Bounds) {
	pos.X += vel.X
	pos.Y += vel.Y

	if pos.X-radius < 0 || pos.X+radius > b.Width {
		vel.X = -vel.X
	}
	if pos.Y-radius < 0 || pos.Y+radius > b.Height {
		vel.Y = -vel.Y
	}
}
