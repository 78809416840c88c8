package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ballpit/components"
)

var testBounds = Bounds{Width: 800, Height: 600}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		pos     components.Position
		vel     components.Velocity
		radius  float64
		wantPos components.Position
		wantVel components.Velocity
	}{
		{
			name:    "free flight",
			pos:     components.Position{X: 100, Y: 100},
			vel:     components.Velocity{X: 1.5, Y: -0.5},
			radius:  10,
			wantPos: components.Position{X: 101.5, Y: 99.5},
			wantVel: components.Velocity{X: 1.5, Y: -0.5},
		},
		{
			name:    "crosses left wall",
			pos:     components.Position{X: 5, Y: 100},
			vel:     components.Velocity{X: -3, Y: 0},
			radius:  10,
			wantPos: components.Position{X: 2, Y: 100},
			wantVel: components.Velocity{X: 3, Y: 0},
		},
		{
			name:    "crosses right wall",
			pos:     components.Position{X: 789, Y: 100},
			vel:     components.Velocity{X: 2, Y: 1},
			radius:  10,
			wantPos: components.Position{X: 791, Y: 101},
			wantVel: components.Velocity{X: -2, Y: 1},
		},
		{
			name:    "corner flips both",
			pos:     components.Position{X: 11, Y: 589},
			vel:     components.Velocity{X: -2, Y: 2},
			radius:  10,
			wantPos: components.Position{X: 9, Y: 591},
			wantVel: components.Velocity{X: 2, Y: -2},
		},
		{
			name:    "touching wall is inside",
			pos:     components.Position{X: 12, Y: 300},
			vel:     components.Velocity{X: -2, Y: 0},
			radius:  10,
			wantPos: components.Position{X: 10, Y: 300},
			wantVel: components.Velocity{X: -2, Y: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, vel := tc.pos, tc.vel
			Advance(&pos, &vel, tc.radius, testBounds)
			if pos != tc.wantPos {
				t.Errorf("pos = %+v, want %+v", pos, tc.wantPos)
			}
			if vel != tc.wantVel {
				t.Errorf("vel = %+v, want %+v", vel, tc.wantVel)
			}
		})
	}
}

// TestAdvanceNoClamp follows a ball through the wall and back out.
func TestAdvanceNoClamp(t *testing.T) {
	pos := components.Position{X: 5, Y: 300}
	vel := components.Velocity{X: -3}

	Advance(&pos, &vel, 10, testBounds)
	if pos.X != 2 || vel.X != 3 {
		t.Fatalf("after first step x=%v dx=%v, want x=2 dx=3", pos.X, vel.X)
	}

	Advance(&pos, &vel, 10, testBounds)
	if pos.X != 5 {
		t.Errorf("after second step x=%v, want 5", pos.X)
	}
}

func TestPhysicsSystemSkipsMonsters(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Ball](w)

	// A monster never gets a velocity through its constructor; force one to
	// prove the system is what keeps it in place.
	monster := components.NewMonster(10, 400, 300, components.Color{})
	monster.Vel = components.Velocity{X: 5, Y: 5}
	mPos, mVel, mBody, mBall := monster.Components()
	me := mapper.NewEntity(&mPos, &mVel, &mBody, &mBall)

	regular := components.NewRegular(10, 100, 100, components.Color{}, 1, 2)
	rPos, rVel, rBody, rBall := regular.Components()
	re := mapper.NewEntity(&rPos, &rVel, &rBody, &rBall)

	sys := NewPhysicsSystem(w, testBounds)
	sys.Update()

	pos, _, _, _ := mapper.Get(me)
	if *pos != (components.Position{X: 400, Y: 300}) {
		t.Errorf("monster moved to %+v", *pos)
	}
	pos, _, _, _ = mapper.Get(re)
	if *pos != (components.Position{X: 101, Y: 102}) {
		t.Errorf("regular at %+v, want {101 102}", *pos)
	}
}

func TestBoundsContainsDisk(t *testing.T) {
	if !testBounds.ContainsDisk(10, 10, 10) {
		t.Error("disk touching the corner should be contained")
	}
	if testBounds.ContainsDisk(9, 300, 10) {
		t.Error("disk crossing the left edge should not be contained")
	}
	if testBounds.ContainsDisk(400, 595, 10) {
		t.Error("disk crossing the bottom edge should not be contained")
	}
}
