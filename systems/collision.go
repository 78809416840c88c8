package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ballpit/components"
)

// vec converts a position to a gonum vector.
func vec(p components.Position) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Distance returns the Euclidean distance between two ball centers.
func Distance(a, b components.BallState) float64 {
	return r2.Norm(r2.Sub(vec(a.Pos), vec(b.Pos)))
}

// Overlaps reports whether two disks intersect. Touching disks do not count.
func Overlaps(a, b components.BallState) bool {
	return Distance(a, b) < a.Radius+b.Radius
}
