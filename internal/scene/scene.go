package scene

import (
	"image/color"

	"orbit-backdrop/internal/anim"
	"orbit-backdrop/internal/config"
	"orbit-backdrop/internal/field"
	"orbit-backdrop/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene draws the backdrop's 3D layer from the animation state. Update copies the eased camera
// into the raylib camera; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	field       *field.Scene
	state       *anim.State
	reg         *primitives.Registry
	interactive bool
	cursorHand  bool
}

// New returns a scene for the built field, driven by st. The camera starts where st puts it.
func New(fs *field.Scene, st *anim.State, cfg config.Config) *Scene {
	s := &Scene{
		field:       fs,
		state:       st,
		reg:         primitives.NewRegistry(),
		interactive: cfg.Interactive(),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Fovy = cfg.Camera.Fovy
	s.Camera.Projection = rl.CameraPerspective
	s.Update()
	return s
}

// Update runs once per frame after the animation tick: re-aims the camera at the origin from
// its eased position and switches the cursor to a pointing hand while the core is hovered.
func (s *Scene) Update() {
	s.Camera.Position = primitives.Vec(s.state.Camera)
	s.Camera.Target = rl.NewVector3(0, 0, 0)

	if !s.interactive {
		return
	}
	if s.state.Hovered != s.cursorHand {
		s.cursorHand = s.state.Hovered
		if s.cursorHand {
			rl.SetMouseCursor(rl.MouseCursorPointingHand)
		} else {
			rl.SetMouseCursor(rl.MouseCursorDefault)
		}
	}
}

// pass is one step of the 3D layer.
type pass int

const (
	passCore pass = iota
	passFlush
	passDepthOff
	passShell
	passParticles
	passMarkers
	passDepthOn
)

// plan orders the 3D layer. The opaque core is drawn and flushed while depth writes are on,
// so the transparent shell and particles behind it fail the depth test. raylib batches draws
// and the depth mask is plain GL state, so every mask change needs a flush before it.
func plan(hasCore bool) []pass {
	var p []pass
	if hasCore {
		p = append(p, passCore)
	}
	return append(p, passFlush, passDepthOff, passShell, passParticles, passMarkers, passFlush, passDepthOn)
}

// Draw renders the 3D layer in plan order; additive markers go last without depth writes.
func (s *Scene) Draw() {
	shell := &s.field.Shell
	parts := &s.field.Particles
	shellM := shell.Transform()

	rl.BeginMode3D(s.Camera)
	for _, p := range plan(shell.Core != nil) {
		switch p {
		case passCore:
			s.reg.DrawSolidSphere(
				shellM.Col(3).Vec3(),
				shell.CoreWorldRadius(),
				shell.Core.Rings, shell.Core.Slices,
				toColor(shell.Core.Color, 1),
			)
		case passFlush:
			rl.DrawRenderBatchActive()
		case passDepthOff:
			rl.DisableDepthMask()
		case passShell:
			s.reg.DrawWireframe(shell.Geometry, shellM, toColor(shell.Color, shell.Opacity))
		case passParticles:
			s.reg.DrawPoints(s.Camera, parts.Positions, parts.Transform(), parts.Size, toColor(parts.Color, parts.Opacity), parts.Textured)
		case passMarkers:
			for i := range shell.Markers {
				m := &shell.Markers[i]
				tint := toColor(m.Material.Color, m.Opacity*m.Material.Opacity)
				s.reg.DrawSprite(s.Camera, m.Material.Texture, shell.MarkerWorld(i), s.state.MarkerSize(i), tint, m.Material.Additive)
			}
		case passDepthOn:
			rl.EnableDepthMask()
		}
	}
	rl.EndMode3D()
}

// Unload frees GPU resources.
func (s *Scene) Unload() {
	s.reg.Unload()
	if s.cursorHand {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// toColor applies opacity (0–1) to an opaque color.
func toColor(c color.RGBA, opacity float32) rl.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return rl.NewColor(c.R, c.G, c.B, uint8(float32(c.A)*opacity+0.5))
}
