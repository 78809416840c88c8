package components

import "testing"

func TestNewMonsterHasZeroVelocity(t *testing.T) {
	m := NewMonster(12, 100, 200, Color{R: 1, G: 2, B: 3})
	if m.Kind != KindMonster {
		t.Fatalf("kind = %v, want monster", m.Kind)
	}
	if m.Vel != (Velocity{}) {
		t.Errorf("velocity = %+v, want zero", m.Vel)
	}
}

func TestConstructorsKeepArguments(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30}
	r := NewRegular(15, 1, 2, c, 0.5, -0.25)
	if r.Kind != KindRegular || r.Radius != 15 || r.Pos != (Position{1, 2}) || r.Vel != (Velocity{0.5, -0.25}) || r.Color != c {
		t.Errorf("NewRegular = %+v", r)
	}
	p := NewRepellent(11, 3, 4, c, -1, 1)
	if p.Kind != KindRepellent || p.Radius != 11 || p.Pos != (Position{3, 4}) || p.Vel != (Velocity{-1, 1}) {
		t.Errorf("NewRepellent = %+v", p)
	}
}

func TestPrunable(t *testing.T) {
	tests := []struct {
		name  string
		state BallState
		want  bool
	}{
		{"regular alive", NewRegular(1, 0, 0, Color{}, 0, 0), false},
		{"regular zero radius", NewRegular(0, 0, 0, Color{}, 0, 0), true},
		{"regular negative radius", NewRegular(-2, 0, 0, Color{}, 0, 0), true},
		{"monster zero radius", NewMonster(0, 0, 0, Color{}), false},
		{"repellent negative radius", NewRepellent(-1, 0, 0, Color{}, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Prunable(); got != tt.want {
				t.Errorf("Prunable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComponentsRoundTrip(t *testing.T) {
	want := NewRepellent(13, 40, 50, Color{R: 9}, 0.1, 0.2)
	want.ID = 7

	pos, vel, body, ball := want.Components()
	got := StateOf(&pos, &vel, &body, &ball)
	if got != want {
		t.Errorf("StateOf(Components()) = %+v, want %+v", got, want)
	}
}

func TestKindString(t *testing.T) {
	if KindRepellent.String() != "repellent" {
		t.Errorf("KindRepellent.String() = %q", KindRepellent.String())
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", Kind(9).String())
	}
}
