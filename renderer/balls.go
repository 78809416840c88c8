// Package renderer draws simulation state with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ballpit/camera"
	"github.com/pthm-cable/ballpit/components"
	"github.com/pthm-cable/ballpit/game"
	"github.com/pthm-cable/ballpit/systems"
)

// BallRenderer draws the canvas and the balls on it.
type BallRenderer struct {
	bounds     systems.Bounds
	background rl.Color
	canvas     rl.Color
	border     rl.Color
}

// NewBallRenderer creates a renderer for a canvas of the given size.
func NewBallRenderer(bounds systems.Bounds) *BallRenderer {
	return &BallRenderer{
		bounds:     bounds,
		background: rl.LightGray,
		canvas:     rl.RayWhite,
		border:     rl.Gray,
	}
}

// Draw clears the window and draws the canvas and every visible ball
// through the camera. Must be called between rl.BeginDrawing and rl.EndDrawing.
func (r *BallRenderer) Draw(balls []game.BallView, cam *camera.Camera) {
	rl.ClearBackground(r.background)

	rl.BeginMode2D(Camera2D(cam))
	w, h := int32(r.bounds.Width), int32(r.bounds.Height)
	rl.DrawRectangle(0, 0, w, h, r.canvas)
	rl.DrawRectangleLines(0, 0, w, h, r.border)

	for _, b := range balls {
		x, y, radius := float32(b.X), float32(b.Y), float32(b.Radius)
		if !cam.IsVisible(x, y, radius) {
			continue
		}
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, ToColor(b.Color))
	}
	rl.EndMode2D()
}

// Camera2D converts the camera into raylib's 2D transform, with the
// canvas origin as the target.
func Camera2D(cam *camera.Camera) rl.Camera2D {
	ox, oy := cam.Offset()
	return rl.Camera2D{
		Offset: rl.Vector2{X: ox, Y: oy},
		Target: rl.Vector2{},
		Zoom:   cam.Zoom,
	}
}

// ToColor converts a ball color to an opaque raylib color.
func ToColor(c components.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
