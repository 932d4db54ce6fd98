package anim

import (
	"testing"

	"github.com/chewxy/math32"
	"orbit-backdrop/internal/config"
	"orbit-backdrop/internal/field"
	"orbit-backdrop/internal/hover"
	"orbit-backdrop/internal/pointer"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestPhaseRangeAndPeriod(t *testing.T) {
	const cycle = 3.6
	delays := []float32{0, 0.3, 1.8, 5}
	for _, d := range delays {
		for i := -200; i <= 200; i++ {
			tm := float32(i) * 0.137
			tau := Phase(tm, d, cycle)
			if tau < 0 || tau >= cycle {
				t.Fatalf("Phase(%v,%v) = %v outside [0,%v)", tm, d, tau, cycle)
			}
			next := Phase(tm+cycle, d, cycle)
			if !near(tau, next) && !(near(tau, 0) && near(next, cycle)) && !(near(next, 0) && near(tau, cycle)) {
				t.Fatalf("Expected period %v at t=%v d=%v: %v vs %v", cycle, tm, d, tau, next)
			}
		}
	}
}

func TestPhaseBeforeDelay(t *testing.T) {
	if got := Phase(0, 1.5, 3.6); !near(got, 2.1) {
		t.Errorf("Expected 2.1 for t before delay, got %v", got)
	}
}

func TestPulseSegments(t *testing.T) {
	cases := []struct {
		tau            float32
		opacity, scale float32
	}{
		{0, 0, 0.6},
		{0.36, 0.45, 0.85},
		{0.72, 0.9, 1.1},
		{1.26, 0.65, 1.0},
		{1.8, 0.4, 0.9},
		{2.7, 0.2, 0.75},
	}
	for _, tc := range cases {
		op, sc := Pulse(tc.tau, 3.6)
		if !near(op, tc.opacity) || !near(sc, tc.scale) {
			t.Errorf("Pulse(%v): expected (%v, %v), got (%v, %v)", tc.tau, tc.opacity, tc.scale, op, sc)
		}
	}
}

func TestPulseClosedLoop(t *testing.T) {
	const cycle = 3.6
	boundaries := []float32{0.72, 1.8}
	for _, b := range boundaries {
		lo, ls := Pulse(b-1e-4, cycle)
		ro, rs := Pulse(b, cycle)
		if math32.Abs(lo-ro) > 1e-3 || math32.Abs(ls-rs) > 1e-3 {
			t.Errorf("Discontinuity at %v: (%v,%v) vs (%v,%v)", b, lo, ls, ro, rs)
		}
	}
	eo, es := Pulse(cycle-1e-4, cycle)
	so, ss := Pulse(0, cycle)
	if math32.Abs(eo-so) > 1e-3 || math32.Abs(es-ss) > 1e-3 {
		t.Errorf("Expected end of cycle (%v,%v) to meet start (%v,%v)", eo, es, so, ss)
	}
}

func TestPulseBounds(t *testing.T) {
	for i := 0; i < 3600; i++ {
		op, sc := Pulse(float32(i)/1000, 3.6)
		if op < 0 || op > 0.9+eps || sc < 0.6-eps || sc > 1.1+eps {
			t.Fatalf("Pulse(%v) out of range: (%v, %v)", float32(i)/1000, op, sc)
		}
	}
}

func newState(t *testing.T, variant string) *State {
	t.Helper()
	cfg := config.Default()
	cfg.Variant = variant
	return New(field.Build(cfg, field.NewRand(1)), cfg)
}

func TestMarkerMidRamp(t *testing.T) {
	s := newState(t, config.VariantInteractive)
	s.Tick(0.36, false, pointer.State{})
	m := s.Scene.Shell.Markers[0]
	if m.Delay != 0 {
		t.Fatalf("Expected first marker delay 0, got %v", m.Delay)
	}
	if !near(m.Opacity, 0.45) || !near(m.Scale, 0.85) {
		t.Errorf("Expected opacity 0.45 scale 0.85, got %v %v", m.Opacity, m.Scale)
	}
	if !near(s.MarkerSize(0), 0.2*0.85) {
		t.Errorf("Expected marker size %v, got %v", 0.2*0.85, s.MarkerSize(0))
	}
}

func TestMarkerSizeFollowsShellScale(t *testing.T) {
	s := newState(t, config.VariantInteractive)
	for i := 0; i < 300; i++ {
		s.Tick(0.36, true, pointer.State{})
	}
	if !near(s.Scene.Shell.Scale, HoverScale) {
		t.Fatalf("Expected shell scale %v, got %v", HoverScale, s.Scene.Shell.Scale)
	}
	want := float32(0.2 * 0.85 * HoverScale)
	if !near(s.MarkerSize(0), want) {
		t.Errorf("Expected hovered marker size %v, got %v", want, s.MarkerSize(0))
	}
}

func TestMarkersAreIndependentlyPhased(t *testing.T) {
	s := newState(t, config.VariantInteractive)
	s.Tick(0.6, false, pointer.State{})
	a, b := s.Scene.Shell.Markers[0], s.Scene.Shell.Markers[1]
	if a.Opacity == b.Opacity {
		t.Errorf("Expected markers with delays %v and %v to differ, both %v", a.Delay, b.Delay, a.Opacity)
	}
	if !near(b.Opacity, 0) || !near(b.Scale, 0.6) {
		t.Errorf("Expected marker delayed 0.6 to be at cycle start, got %v %v", b.Opacity, b.Scale)
	}
}

func TestHoverEasesScale(t *testing.T) {
	s := newState(t, config.VariantInteractive)
	s.Tick(4.98, false, pointer.State{})
	if !near(s.Scene.Shell.Scale, 1.0) {
		t.Fatalf("Expected idle scale 1.0, got %v", s.Scene.Shell.Scale)
	}
	s.Tick(5.0, true, pointer.State{})
	if !near(s.Scene.Shell.Scale, 0.965) {
		t.Errorf("Expected scale 0.965 after one hovered frame, got %v", s.Scene.Shell.Scale)
	}
	if !near(s.Scene.Shell.Opacity, 0.12) {
		t.Errorf("Expected opacity 0.12, got %v", s.Scene.Shell.Opacity)
	}
	if !s.Hovered {
		t.Error("Expected hovered flag set")
	}
}

func TestHoverConvergesWithoutOvershoot(t *testing.T) {
	s := newState(t, config.VariantInteractive)
	for i := 0; i < 300; i++ {
		s.Tick(float32(i)/60, true, pointer.State{})
		if s.Scene.Shell.Scale < HoverScale {
			t.Fatalf("frame %d: scale overshot to %v", i, s.Scene.Shell.Scale)
		}
		if s.SpinX < hoverSpinX || s.SpinY < hoverSpinY {
			t.Fatalf("frame %d: spin overshot to (%v, %v)", i, s.SpinX, s.SpinY)
		}
	}
	if !near(s.Scene.Shell.Scale, HoverScale) || !near(s.Scene.Shell.Opacity, HoverOpacity) {
		t.Errorf("Expected convergence to hover targets, got scale %v opacity %v", s.Scene.Shell.Scale, s.Scene.Shell.Opacity)
	}
	if !near(s.SpinX, hoverSpinX) || !near(s.SpinY, hoverSpinY) {
		t.Errorf("Expected spin near hover rate, got (%v, %v)", s.SpinX, s.SpinY)
	}
}

func TestRotationAccumulation(t *testing.T) {
	s := newState(t, config.VariantInteractive)
	s.Tick(10, false, pointer.State{})
	if !near(s.Scene.Particles.RotX, 0.2) || !near(s.Scene.Particles.RotY, 0.5) {
		t.Errorf("Expected particle rotation from elapsed time, got (%v, %v)", s.Scene.Particles.RotX, s.Scene.Particles.RotY)
	}
	if !near(s.Scene.Shell.RotX, 0.02) || !near(s.Scene.Shell.RotY, 0.05) {
		t.Errorf("Expected one increment of idle spin, got (%v, %v)", s.Scene.Shell.RotX, s.Scene.Shell.RotY)
	}
	s.Tick(10, false, pointer.State{})
	if !near(s.Scene.Shell.RotY, 0.1) {
		t.Errorf("Expected shell rotation to keep accumulating per frame, got %v", s.Scene.Shell.RotY)
	}
	if !near(s.Scene.Particles.RotY, 0.5) {
		t.Errorf("Expected particle rotation to stay a function of time, got %v", s.Scene.Particles.RotY)
	}
}

func TestCameraParallax(t *testing.T) {
	s := newState(t, config.VariantInteractive)
	p := pointer.State{X: 0.5, Y: -0.25}
	s.Tick(0, false, p)
	if !near(s.Camera[0], 0.05) || !near(s.Camera[1], 0.025) {
		t.Errorf("Expected first parallax step (0.05, 0.025), got (%v, %v)", s.Camera[0], s.Camera[1])
	}
	for i := 0; i < 400; i++ {
		s.Tick(0, false, p)
	}
	if !near(s.Camera[0], 1) || !near(s.Camera[1], 0.5) {
		t.Errorf("Expected camera to settle at (1, 0.5), got (%v, %v)", s.Camera[0], s.Camera[1])
	}
	if s.Camera[2] != 5 {
		t.Errorf("Expected camera distance unchanged, got %v", s.Camera[2])
	}
	if v := s.View(1); v.Target[0] != 0 || v.Target[1] != 0 || v.Target[2] != 0 {
		t.Errorf("Expected camera aimed at origin, got %v", v.Target)
	}
}

func TestClassicVariant(t *testing.T) {
	s := newState(t, config.VariantClassic)
	s.Tick(10, true, pointer.State{})
	if !near(s.Scene.Shell.RotX, 0.2) || !near(s.Scene.Shell.RotY, 0.5) {
		t.Errorf("Expected classic shell rotation from time, got (%v, %v)", s.Scene.Shell.RotX, s.Scene.Shell.RotY)
	}
	if s.Scene.Shell.Scale != 1 || s.Hovered {
		t.Errorf("Expected classic shell to ignore hover, got scale %v hovered %v", s.Scene.Shell.Scale, s.Hovered)
	}
}

func TestLoopHoverFromPointer(t *testing.T) {
	s := newState(t, config.VariantInteractive)
	tr := pointer.NewTracker()
	det := hover.NewDetector()
	loop := NewLoop(s, tr, det, 1600, 900)

	tr.Move(800, 450, 1600, 900)
	loop.Frame(1)
	if !s.Hovered {
		t.Error("Expected hover with pointer at the center")
	}

	tr.Move(0, 0, 1600, 900)
	loop.Frame(1.016)
	if s.Hovered {
		t.Error("Expected no hover with pointer in the corner")
	}
	if s.Frames() != 2 || det.Tests() != 2 {
		t.Errorf("Expected 2 frames and 2 ray tests, got %d and %d", s.Frames(), det.Tests())
	}
}

func TestLoopResizeIdempotent(t *testing.T) {
	loop := NewLoop(newState(t, config.VariantInteractive), pointer.NewTracker(), hover.NewDetector(), 800, 600)
	loop.Resize(1920, 1080)
	loop.Resize(1920, 1080)
	if !near(loop.aspect, 16.0/9.0) {
		t.Errorf("Expected 16:9 aspect, got %v", loop.aspect)
	}
	loop.Resize(0, 0)
	if !near(loop.aspect, 16.0/9.0) {
		t.Errorf("Expected zero-size resize to be ignored, got %v", loop.aspect)
	}
}
