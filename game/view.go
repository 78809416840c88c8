package game

import "github.com/pthm-cable/ballpit/components"

// BallView is what a renderer needs to draw one ball.
type BallView struct {
	ID     uint32
	Radius float64
	X, Y   float64
	Color  components.Color
}

// Balls returns a snapshot of the population in order. The slice is a copy;
// changing it does not affect the simulation.
func (s *Simulation) Balls() []BallView {
	views := make([]BallView, len(s.order))
	for i, e := range s.order {
		pos, _, body, ball := s.mapper.Get(e)
		views[i] = BallView{
			ID:     ball.ID,
			Radius: body.Radius,
			X:      pos.X,
			Y:      pos.Y,
			Color:  body.Color,
		}
	}
	return views
}
