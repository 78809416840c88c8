package components

// BallState is a flat copy of every component of one ball.
// Collision rules, telemetry and tracing work on these values instead of
// holding pointers into the world.
type BallState struct {
	ID     uint32
	Kind   Kind
	Pos    Position
	Vel    Velocity
	Radius float64
	Color  Color
}

// NewRegular creates a regular ball.
func NewRegular(radius, x, y float64, color Color, dx, dy float64) BallState {
	return BallState{
		Kind:   KindRegular,
		Pos:    Position{X: x, Y: y},
		Vel:    Velocity{X: dx, Y: dy},
		Radius: radius,
		Color:  color,
	}
}

// NewMonster creates a monster ball. Monsters are stationary for their whole lifetime.
func NewMonster(radius, x, y float64, color Color) BallState {
	return BallState{
		Kind:   KindMonster,
		Pos:    Position{X: x, Y: y},
		Radius: radius,
		Color:  color,
	}
}

// NewRepellent creates a repellent ball.
func NewRepellent(radius, x, y float64, color Color, dx, dy float64) BallState {
	return BallState{
		Kind:   KindRepellent,
		Pos:    Position{X: x, Y: y},
		Vel:    Velocity{X: dx, Y: dy},
		Radius: radius,
		Color:  color,
	}
}

// Viable reports whether the ball still has a positive radius.
func (b BallState) Viable() bool {
	return b.Radius > 0
}

// Prunable reports whether the ball must be removed at the end of a tick.
// Only regular balls die; other kinds are kept whatever their radius.
func (b BallState) Prunable() bool {
	return b.Kind == KindRegular && !b.Viable()
}

// Components splits the state into the ECS components stored in the world.
func (b BallState) Components() (Position, Velocity, Body, Ball) {
	return b.Pos, b.Vel, Body{Radius: b.Radius, Color: b.Color}, Ball{ID: b.ID, Kind: b.Kind}
}

// StateOf assembles a BallState from stored components.
func StateOf(pos *Position, vel *Velocity, body *Body, ball *Ball) BallState {
	return BallState{
		ID:     ball.ID,
		Kind:   ball.Kind,
		Pos:    *pos,
		Vel:    *vel,
		Radius: body.Radius,
		Color:  body.Color,
	}
}
