package anim

import (
	"orbit-backdrop/internal/hover"
	"orbit-backdrop/internal/pointer"
)

// Loop is the 3D frame callback: hover test with last frame's camera, then Tick.
type Loop struct {
	State    *State
	Pointer  *pointer.Tracker
	Detector *hover.Detector
	aspect   float32
}

// NewLoop wires the state to its pointer source and hover detector.
func NewLoop(st *State, tr *pointer.Tracker, det *hover.Detector, width, height int) *Loop {
	l := &Loop{State: st, Pointer: tr, Detector: det}
	l.Resize(width, height)
	return l
}

// Resize updates the projection aspect. Safe to call at any time between frames; repeated
// calls with the same size are no-ops.
func (l *Loop) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.aspect = float32(width) / float32(height)
}

// Frame runs one 3D tick at elapsed time t (seconds).
func (l *Loop) Frame(t float32) {
	p := l.Pointer.State()
	hovered := false
	if !l.State.classic {
		hovered = l.Detector.Hovered(l.State.View(l.aspect), p, &l.State.Scene.Shell)
	}
	l.State.Tick(t, hovered, p)
}
