// Package ui draws the heads-up display and its controls.
package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Speed slider limits, as multipliers of wall-clock time.
const (
	MinSpeed = 0.25
	MaxSpeed = 4.0
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title          string
	Tick           int32
	RegularCount   int
	MonsterCount   int
	RepellentCount int
	Dropped        int
	FPS            int32
	AvgTick        time.Duration
}

// HUD renders the main heads-up display and owns the run controls.
type HUD struct {
	x, y   float32
	paused bool
	speed  float32
	step   bool
}

// NewHUD creates a HUD anchored at the top-left corner.
func NewHUD() *HUD {
	return &HUD{x: 10, y: 10, speed: 1}
}

// Paused reports whether ticking is suspended.
func (h *HUD) Paused() bool {
	return h.paused
}

// TogglePause flips the paused state and returns the new value.
func (h *HUD) TogglePause() bool {
	h.paused = !h.paused
	return h.paused
}

// Speed returns the time multiplier chosen on the slider.
func (h *HUD) Speed() float32 {
	return h.speed
}

// SetSpeed sets the time multiplier, clamped to the slider range.
func (h *HUD) SetSpeed(speed float32) {
	h.speed = max(MinSpeed, min(MaxSpeed, speed))
}

// RequestStep asks for a single tick on the next frame.
func (h *HUD) RequestStep() {
	h.step = true
}

// TakeStep reports whether a single step was requested since the last call.
func (h *HUD) TakeStep() bool {
	s := h.step
	h.step = false
	return s
}

// Draw renders the HUD and processes its controls.
func (h *HUD) Draw(data HUDData) {
	x, y := int32(h.x), int32(h.y)

	rl.DrawText(data.Title, x, y, 20, rl.DarkGray)
	rl.DrawText(
		fmt.Sprintf("Regular: %d | Monster: %d | Repellent: %d", data.RegularCount, data.MonsterCount, data.RepellentCount),
		x, y+25, 16, rl.Gray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %.2fx | FPS: %d | Dropped: %d", data.Tick, h.speed, data.FPS, data.Dropped),
		x, y+45, 16, rl.Gray,
	)

	rl.DrawText(fmt.Sprintf("Avg tick: %s", data.AvgTick.Round(time.Microsecond)), x, y+65, 16, rl.Gray)

	status := "Running"
	if h.paused {
		status = "PAUSED"
	}
	rl.DrawText(status, x, y+85, 16, rl.Maroon)

	row := h.y + 110
	if gui.Button(rl.Rectangle{X: h.x, Y: row, Width: 80, Height: 24}, toggleText(h.paused, "Resume", "Pause")) {
		h.TogglePause()
	}
	if gui.Button(rl.Rectangle{X: h.x + 90, Y: row, Width: 80, Height: 24}, "Step") {
		h.RequestStep()
	}

	row += 34
	h.SetSpeed(gui.SliderBar(
		rl.Rectangle{X: h.x + 40, Y: row, Width: 160, Height: 20},
		"Speed", fmt.Sprintf("%.2f", h.speed),
		h.speed, MinSpeed, MaxSpeed,
	))
}

func toggleText(on bool, whenOn, whenOff string) string {
	if on {
		return whenOn
	}
	return whenOff
}
