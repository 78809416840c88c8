package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ballpit/camera"
)

const panSpeed = 8.0

// HandleInput processes keyboard and mouse input for the HUD and camera.
func HandleInput(hud *HUD, cam *camera.Camera) {
	handleResize(cam)

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		hud.TogglePause()
	}
	// Single step while paused
	if hud.Paused() && rl.IsKeyPressed(rl.KeyN) {
		hud.RequestStep()
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		hud.SetSpeed(hud.Speed() / 2)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		hud.SetSpeed(hud.Speed() * 2)
	}

	handleCameraInput(cam)
}

// handleResize propagates new window dimensions to the camera.
func handleResize(cam *camera.Camera) {
	if !rl.IsWindowResized() {
		return
	}
	cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// handleCameraInput processes camera pan/zoom controls.
func handleCameraInput(cam *camera.Camera) {
	if rl.IsKeyDown(rl.KeyRight) {
		cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		cam.Pan(0, -panSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		cam.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		cam.Reset()
	}
}
