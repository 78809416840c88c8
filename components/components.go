// Package components defines ECS components for the simulation.
package components

import "fmt"

// Kind discriminates how a ball moves and responds to collisions.
type Kind uint8

const (
	KindRegular   Kind = iota // Moves, can be pruned once its radius reaches zero
	KindMonster               // Never moves
	KindRepellent             // Moves, never pruned
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindMonster:
		return "monster"
	case KindRepellent:
		return "repellent"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Position represents a ball's center in canvas coordinates.
type Position struct {
	X, Y float64
}

// Velocity represents the displacement applied per tick.
type Velocity struct {
	X, Y float64
}

// Color is an opaque RGB triple, only the renderer interprets it.
type Color struct {
	R, G, B uint8
}

// Body holds the disk geometry and appearance.
type Body struct {
	Radius float64
	Color  Color
}

// Ball holds identity data.
type Ball struct {
	ID   uint32
	Kind Kind
}
