// Package anim advances the backdrop one frame at a time. Every value that changes between
// frames lives in State, so a frame can be stepped and inspected without a window.
package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"orbit-backdrop/internal/config"
	"orbit-backdrop/internal/ease"
	"orbit-backdrop/internal/field"
	"orbit-backdrop/internal/hover"
	"orbit-backdrop/internal/pointer"
)

// Hover and idle targets for the shell.
const (
	IdleScale    = 1.0
	IdleOpacity  = 0.1
	HoverScale   = 0.65
	HoverOpacity = 0.3

	idleSpinX  = 0.02
	idleSpinY  = 0.05
	hoverSpinX = 0.002
	hoverSpinY = 0.005
)

// Easing gains per frame.
const (
	SpinGain   = 0.05
	CameraGain = 0.05
	ShellGain  = 0.1
)

// Particle cloud and classic-shell angular rates, radians per second of elapsed time.
const (
	driftX = 0.02
	driftY = 0.05
)

// parallax scales the pointer offset into a camera offset.
const parallax = 2

// State is the per-frame mutable state: the eased camera, the eased shell spin, the hover flag
// from the last tick, and the scene whose rotation/scale/opacity it drives.
type State struct {
	Scene   *field.Scene
	Camera  mgl32.Vec3
	SpinX   float32
	SpinY   float32
	Hovered bool
	Elapsed float32

	cycle    float32
	baseSize float32
	cam      config.Camera
	classic  bool
	frames   uint64
}

// New returns the state for scn at rest: camera on +Z at the configured distance, idle spin.
func New(scn *field.Scene, cfg config.Config) *State {
	return &State{
		Scene:    scn,
		Camera:   mgl32.Vec3{0, 0, cfg.Camera.Distance},
		SpinX:    idleSpinX,
		SpinY:    idleSpinY,
		cycle:    cfg.Markers.Cycle,
		baseSize: cfg.Markers.BaseSize,
		cam:      cfg.Camera,
		classic:  !cfg.Interactive(),
	}
}

// Tick advances one frame. t is the monotonic time in seconds since start; hovered is this
// frame's hover test result; p is the latest pointer state. Nothing here can fail.
func (s *State) Tick(t float32, hovered bool, p pointer.State) {
	s.frames++
	s.Elapsed = t
	shell := &s.Scene.Shell

	s.Scene.Particles.RotX = t * driftX
	s.Scene.Particles.RotY = t * driftY

	if s.classic {
		shell.RotX = t * driftX
		shell.RotY = t * driftY
	} else {
		s.Hovered = hovered
		scale, opacity := float32(IdleScale), float32(IdleOpacity)
		spinX, spinY := float32(idleSpinX), float32(idleSpinY)
		if hovered {
			scale, opacity = HoverScale, HoverOpacity
			spinX, spinY = hoverSpinX, hoverSpinY
		}
		s.SpinX = ease.Approach(s.SpinX, spinX, SpinGain)
		s.SpinY = ease.Approach(s.SpinY, spinY, SpinGain)
		shell.Scale = ease.Approach(shell.Scale, scale, ShellGain)
		shell.Opacity = ease.Approach(shell.Opacity, opacity, ShellGain)

		shell.RotY += s.SpinY
		shell.RotX += s.SpinX
	}

	for i := range shell.Markers {
		m := &shell.Markers[i]
		m.Opacity, m.Scale = Pulse(Phase(t, m.Delay, s.cycle), s.cycle)
	}

	s.Camera[0] = ease.Approach(s.Camera[0], p.X*parallax, CameraGain)
	s.Camera[1] = ease.Approach(s.Camera[1], -p.Y*parallax, CameraGain)
}

// MarkerSize is marker i's world-space sprite size this frame. Markers are children of the
// shell, so the shell's scale applies on top of the pulse scale.
func (s *State) MarkerSize(i int) float32 {
	return s.baseSize * s.Scene.Shell.Markers[i].Scale * s.Scene.Shell.Scale
}

// View returns the camera for this frame, always aimed at the origin.
func (s *State) View(aspect float32) hover.Camera {
	return hover.Camera{
		Position: s.Camera,
		Target:   mgl32.Vec3{},
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     s.cam.Fovy,
		Aspect:   aspect,
		Near:     s.cam.Near,
		Far:      s.cam.Far,
	}
}

// Frames counts ticks so far.
func (s *State) Frames() uint64 {
	return s.frames
}
