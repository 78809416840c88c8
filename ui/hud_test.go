package ui

import "testing"

func TestHUDPauseAndStep(t *testing.T) {
	h := NewHUD()
	if h.Paused() {
		t.Fatal("new HUD should be running")
	}
	if !h.TogglePause() || !h.Paused() {
		t.Fatal("TogglePause() should pause")
	}

	if h.TakeStep() {
		t.Error("TakeStep() = true without a request")
	}
	h.RequestStep()
	if !h.TakeStep() {
		t.Error("TakeStep() = false after RequestStep()")
	}
	if h.TakeStep() {
		t.Error("step request should be consumed")
	}
}

func TestHUDSetSpeed(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{1, 1},
		{2.5, 2.5},
		{0.01, MinSpeed},
		{100, MaxSpeed},
	}

	h := NewHUD()
	for _, tt := range tests {
		h.SetSpeed(tt.in)
		if h.Speed() != tt.want {
			t.Errorf("SetSpeed(%v): Speed() = %v, want %v", tt.in, h.Speed(), tt.want)
		}
	}
}

func TestToggleText(t *testing.T) {
	if got := toggleText(true, "Resume", "Pause"); got != "Resume" {
		t.Errorf("toggleText(true) = %q", got)
	}
	if got := toggleText(false, "Resume", "Pause"); got != "Pause" {
		t.Errorf("toggleText(false) = %q", got)
	}
}
