// Package texture draws the soft round sprites used for particles and flash markers.
// Sprites are straight-alpha white with the shape in the alpha channel so a tint color can be
// applied at draw time.
package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// Stop is one alpha stop of a radial gradient; At is a fraction of the outer radius.
type Stop struct {
	At    float64
	Alpha float64
}

// Sprite sizes and gradients.
const (
	DotSize  = 128
	GlowSize = 64

	dotInner = 0.05
	// softenRadius is the Gaussian blur radius in pixels applied after rasterizing.
	softenRadius = 1.0
)

var (
	dotStops  = []Stop{{0, 1}, {0.6, 0.9}, {1, 0}}
	glowStops = []Stop{{0, 1}, {0.4, 0.8}, {1, 0}}
)

// Radial rasterizes a centered radial gradient into a size×size alpha mask.
// inner is the radius (fraction of the outer radius) where the gradient starts; inside it the
// first stop's alpha is used. Outside the outer radius alpha is zero.
func Radial(size int, inner float64, stops []Stop) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	if size <= 0 || len(stops) == 0 {
		return img
	}
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy) / c
			a := 0.0
			if d <= 1 {
				t := 0.0
				if inner < 1 {
					t = (d - inner) / (1 - inner)
				}
				a = alphaAt(stops, t)
			}
			img.SetAlpha(x, y, color.Alpha{uint8(math.Round(a * 255))})
		}
	}
	return img
}

// white turns a blurred mask into straight-alpha white. The blur works on premultiplied
// pixels; for white the alpha channel alone carries the shape.
func white(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x, y, color.NRGBA{255, 255, 255, src.RGBAAt(x, y).A})
		}
	}
	return dst
}

// alphaAt linearly interpolates the stops at t, clamping outside the first and last stop.
func alphaAt(stops []Stop, t float64) float64 {
	if t <= stops[0].At {
		return stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].At {
			prev, next := stops[i-1], stops[i]
			span := next.At - prev.At
			if span <= 0 {
				return next.Alpha
			}
			return prev.Alpha + (next.Alpha-prev.Alpha)*(t-prev.At)/span
		}
	}
	return stops[len(stops)-1].Alpha
}

// Dot is the round particle sprite.
func Dot() *image.NRGBA {
	return white(blur.Gaussian(Radial(DotSize, dotInner, dotStops), softenRadius))
}

// Glow is the flash marker sprite.
func Glow() *image.NRGBA {
	return white(blur.Gaussian(Radial(GlowSize, 0, glowStops), softenRadius))
}
