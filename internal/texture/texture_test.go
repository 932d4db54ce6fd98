package texture

import (
	"math"
	"testing"
)

func TestAlphaAt(t *testing.T) {
	cases := []struct {
		t, want float64
	}{
		{-1, 1},
		{0, 1},
		{0.3, 0.95},
		{0.6, 0.9},
		{0.8, 0.45},
		{1, 0},
		{2, 0},
	}
	for _, tc := range cases {
		if got := alphaAt(dotStops, tc.t); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("alphaAt(%v): expected %v, got %v", tc.t, tc.want, got)
		}
	}
}

func TestRadialShape(t *testing.T) {
	img := Radial(64, 0, glowStops)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	if center := img.AlphaAt(32, 32); center.A < 240 {
		t.Errorf("Expected near-opaque center, got alpha %d", center.A)
	}
	if corner := img.AlphaAt(0, 0); corner.A != 0 {
		t.Errorf("Expected transparent corner, got alpha %d", corner.A)
	}
	if a, b := img.AlphaAt(10, 32), img.AlphaAt(53, 32); a.A != b.A {
		t.Errorf("Expected horizontal symmetry, got %d vs %d", a.A, b.A)
	}
}

func TestSprites(t *testing.T) {
	dot := Dot()
	if dot.Bounds().Dx() != DotSize {
		t.Errorf("Expected dot size %d, got %d", DotSize, dot.Bounds().Dx())
	}
	glow := Glow()
	if glow.Bounds().Dx() != GlowSize {
		t.Errorf("Expected glow size %d, got %d", GlowSize, glow.Bounds().Dx())
	}
	if glow.NRGBAAt(GlowSize/2, GlowSize/2).A < 200 {
		t.Error("Expected bright glow center after blur")
	}
	if dot.NRGBAAt(0, 0).A > 5 {
		t.Error("Expected dot corners to stay transparent after blur")
	}
}

func TestSpritesAreStraightAlphaWhite(t *testing.T) {
	glow := Glow()
	// half way out the glow is partly transparent; color must stay white, not scaled by alpha
	c := glow.NRGBAAt(GlowSize/2+GlowSize/4, GlowSize/2)
	if c.A == 0 || c.A == 255 {
		t.Fatalf("Expected a partly transparent pixel, got alpha %d", c.A)
	}
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("Expected straight-alpha white, got %v", c)
	}
	if len(glow.Pix) != GlowSize*GlowSize*4 || glow.Pix[(GlowSize/2*GlowSize+GlowSize/2)*4] != 255 {
		t.Errorf("Expected tightly packed RGBA pixels with white color bytes")
	}
}
