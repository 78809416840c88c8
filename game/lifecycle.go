package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ballpit/components"
)

// spawnPopulation creates the starting balls, grouped regular, monster, repellent.
func (s *Simulation) spawnPopulation(p Population) {
	s.order = make([]ecs.Entity, 0, p.Total())

	for i := 0; i < p.Regular; i++ {
		radius, x, y, color, dx, dy := s.randomBall()
		s.addBall(components.NewRegular(radius, x, y, color, dx, dy))
	}

	for i := 0; i < p.Monster; i++ {
		// Velocity is still drawn so every kind consumes the same random sequence.
		radius, x, y, color, _, _ := s.randomBall()
		s.addBall(components.NewMonster(radius, x, y, color))
	}

	for i := 0; i < p.Repellent; i++ {
		radius, x, y, color, dx, dy := s.randomBall()
		s.addBall(components.NewRepellent(radius, x, y, color, dx, dy))
	}
}

// randomBall draws the attributes of one ball. The disk starts fully inside the canvas.
func (s *Simulation) randomBall() (radius, x, y float64, color components.Color, dx, dy float64) {
	b := s.physics.Bounds()
	sp := s.spawn

	radius = float64(sp.MinRadius + s.rng.Intn(sp.MaxRadius-sp.MinRadius))
	x = s.rng.Float64()*(b.Width-2*radius) + radius
	y = s.rng.Float64()*(b.Height-2*radius) + radius
	color = components.Color{
		R: uint8(s.rng.Intn(256)),
		G: uint8(s.rng.Intn(256)),
		B: uint8(s.rng.Intn(256)),
	}
	dx = (s.rng.Float64()*2 - 1) * sp.MaxSpeed
	dy = (s.rng.Float64()*2 - 1) * sp.MaxSpeed
	return radius, x, y, color, dx, dy
}

// addBall stores a ball in the world and appends it to the population.
func (s *Simulation) addBall(st components.BallState) ecs.Entity {
	st.ID = s.nextID
	s.nextID++

	pos, vel, body, ball := st.Components()
	e := s.mapper.NewEntity(&pos, &vel, &body, &ball)
	s.order = append(s.order, e)
	return e
}

// prune removes regular balls whose radius dropped to zero or below.
// It compacts the population in one pass after all pairs were handled.
func (s *Simulation) prune() {
	var dead []ecs.Entity

	kept := s.order[:0]
	for _, e := range s.order {
		st := s.state(e)
		if st.Prunable() {
			dead = append(dead, e)
			s.collector.RecordPrune()
			continue
		}
		kept = append(kept, e)
	}
	s.order = kept

	for _, e := range dead {
		s.world.RemoveEntity(e)
	}
}
