// Package field builds the static parts of the backdrop: the particle cloud, the wireframe
// shell, its opaque core, and the flash markers laid out on the shell surface.
// Everything is created once; only rotation, scale, and opacity fields change afterwards.
package field

import (
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"orbit-backdrop/internal/config"
)

// ParticleField is the point cloud. Positions never change; the whole cloud is rotated by RotX/RotY.
type ParticleField struct {
	Positions []mgl32.Vec3
	Size      float32
	Color     color.RGBA
	Opacity   float32
	Textured  bool
	RotX      float32
	RotY      float32
}

// Transform returns the cloud's world matrix (Euler XYZ).
func (p *ParticleField) Transform() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(p.RotX).Mul4(mgl32.HomogRotate3DY(p.RotY))
}

// InnerCore is the opaque sphere parented to the shell. Radius is shell-local.
type InnerCore struct {
	Radius float32
	Rings  int
	Slices int
	Color  color.RGBA
}

// OrbitShell is the rotating wireframe sphere. Core and Markers are children: their
// coordinates are shell-local and follow the shell's rotation and scale.
type OrbitShell struct {
	Radius   float32
	Geometry Wireframe
	Color    color.RGBA
	RotX     float32
	RotY     float32
	Scale    float32
	Opacity  float32
	Core     *InnerCore
	Markers  []FlashMarker
}

// Transform returns the shell's world matrix: rotation (Euler XYZ) then uniform scale.
func (s *OrbitShell) Transform() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(s.RotX).
		Mul4(mgl32.HomogRotate3DY(s.RotY)).
		Mul4(mgl32.Scale3D(s.Scale, s.Scale, s.Scale))
}

// MarkerWorld returns marker i's position in world space.
func (s *OrbitShell) MarkerWorld(i int) mgl32.Vec3 {
	return mgl32.TransformCoordinate(s.Markers[i].Position, s.Transform())
}

// CoreWorldRadius is the core's radius after the shell's scale is applied.
func (s *OrbitShell) CoreWorldRadius() float32 {
	if s.Core == nil {
		return 0
	}
	return s.Core.Radius * s.Scale
}

// Scene is everything Build produces.
type Scene struct {
	Particles ParticleField
	Shell     OrbitShell
}

// Build constructs the scene from cfg, drawing all randomness from rng.
// The classic variant has no core and no markers.
func Build(cfg config.Config, rng *rand.Rand) *Scene {
	s := &Scene{
		Particles: ParticleField{
			Positions: scatter(cfg.Particles.Count, cfg.Particles.Spread, rng),
			Size:      cfg.Particles.Size,
			Color:     parseHex(cfg.Particles.Color, color.RGBA{0, 255, 136, 255}),
			Opacity:   cfg.Particles.Opacity,
			Textured:  cfg.Interactive(),
		},
		Shell: OrbitShell{
			Radius:   cfg.Shell.Radius,
			Geometry: Icosphere(cfg.Shell.Radius, cfg.Shell.Detail),
			Color:    parseHex(cfg.Shell.Color, color.RGBA{0, 68, 34, 255}),
			Scale:    1,
			Opacity:  0.1,
		},
	}
	if !cfg.Interactive() {
		return s
	}

	s.Shell.Core = &InnerCore{
		Radius: cfg.Core.Radius,
		Rings:  cfg.Core.Rings,
		Slices: cfg.Core.Slices,
		Color:  parseHex(cfg.Core.Color, color.RGBA{0, 0, 0, 255}),
	}

	base := BaseFlashMaterial()
	m := cfg.Markers
	s.Shell.Markers = make([]FlashMarker, 0, len(m.Layout))
	for _, spot := range m.Layout {
		mat := base
		mat.Color = hslColor(rng.Float64()*360, m.Saturation, m.Lightness)
		s.Shell.Markers = append(s.Shell.Markers, FlashMarker{
			Position: MarkerPosition(spot.X, spot.Y, m.SurfaceRadius, m.DepthOffset),
			Delay:    spot.Delay,
			Material: mat,
			Opacity:  0,
			Scale:    0.6,
		})
	}
	return s
}

// scatter places count points uniformly in a cube of side spread centered on the origin.
func scatter(count int, spread float32, rng *rand.Rand) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, count)
	for i := range out {
		out[i] = mgl32.Vec3{
			(rng.Float32() - 0.5) * spread,
			(rng.Float32() - 0.5) * spread,
			(rng.Float32() - 0.5) * spread,
		}
	}
	return out
}

func hslColor(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

func parseHex(hex string, fallback color.RGBA) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// NewRand returns a deterministic RNG for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
