package systems

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ballpit/components"
	"github.com/pthm-cable/ballpit/config"
)

// Rules is the collision response contract. Respond is called once for each
// participant of an overlapping pair, with the other participant as argument,
// and returns the new state of self. Both calls of a pair receive the
// states from before the pair was handled, so call order does not matter.
type Rules interface {
	Respond(self, other components.BallState) components.BallState
}

// InertRules leaves every ball untouched.
type InertRules struct{}

// Respond returns self unchanged.
func (InertRules) Respond(self, _ components.BallState) components.BallState {
	return self
}

// FeedingRules makes monsters eat regular balls and repellents push them away.
type FeedingRules struct {
	Bite float64 // radius a regular ball loses per tick of contact with a monster
}

// Respond applies the feeding interactions to self.
func (r FeedingRules) Respond(self, other components.BallState) components.BallState {
	switch self.Kind {
	case components.KindRegular:
		switch other.Kind {
		case components.KindMonster:
			self.Radius -= r.Bite
		case components.KindRepellent:
			self.Vel = repel(self, other)
		}
	case components.KindMonster, components.KindRepellent:
		// unaffected by contact
	}
	return self
}

// repel points self's velocity away from other's center, keeping its speed.
func repel(self, other components.BallState) components.Velocity {
	away := r2.Sub(vec(self.Pos), vec(other.Pos))
	dist := r2.Norm(away)
	if dist == 0 {
		return self.Vel
	}
	speed := r2.Norm(r2.Vec{X: self.Vel.X, Y: self.Vel.Y})
	v := r2.Scale(speed/dist, away)
	return components.Velocity{X: v.X, Y: v.Y}
}

// RulesByName returns the rule set configured under rules.mode.
func RulesByName(cfg config.RulesConfig) (Rules, error) {
	switch cfg.Mode {
	case config.RulesInert, "":
		return InertRules{}, nil
	case config.RulesFeeding:
		return FeedingRules{Bite: cfg.MonsterBite}, nil
	}
	return nil, fmt.Errorf("unknown rule set %q", cfg.Mode)
}
