package field

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SpriteMaterial describes how a flash marker is blended. It holds only values, so assigning
// it gives each marker an independent copy.
type SpriteMaterial struct {
	Texture    string
	Color      color.RGBA
	Opacity    float32
	Additive   bool
	DepthWrite bool
}

// FlashTexture names the glow sprite texture in the primitives registry.
const FlashTexture = "flash"

// BaseFlashMaterial is the template every marker material is cloned from.
func BaseFlashMaterial() SpriteMaterial {
	return SpriteMaterial{
		Texture:    FlashTexture,
		Color:      color.RGBA{255, 255, 255, 255},
		Opacity:    1,
		Additive:   true,
		DepthWrite: false,
	}
}

// FlashMarker is one pulsing sprite on the shell surface. Position is shell-local.
// Delay is static; Opacity and Scale are rewritten every frame by the animation loop.
type FlashMarker struct {
	Position mgl32.Vec3
	Delay    float32
	Material SpriteMaterial
	Opacity  float32
	Scale    float32
}

// MarkerPosition maps a percentage coordinate on the shell's projected disk to a point on
// a sphere of radius r: x% in [0,100] spans -r..r left to right, y% spans r..-r top to bottom.
// The depth is the front hemisphere z = sqrt(r² - x² - y²); points outside the disk get z = 0.
// offset is added to z so the sprite sits just above the surface.
func MarkerPosition(xPct, yPct, r, offset float32) mgl32.Vec3 {
	x := (xPct/100 - 0.5) * 2 * r
	y := (0.5 - yPct/100) * 2 * r
	var z float32
	r2 := r * r
	d2 := x*x + y*y
	if d2 < r2 {
		z = math32.Sqrt(r2 - d2)
	}
	return mgl32.Vec3{x, y, z + offset}
}
