package primitives

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"orbit-backdrop/internal/field"
	"orbit-backdrop/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Texture names. FlashTexture matches the name carried by marker materials.
const (
	DotTexture   = "dot"
	FlashTexture = field.FlashTexture
)

// Registry holds GPU textures for the sprites. Textures are created on first draw
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	textures map[string]rl.Texture2D
	loaded   bool
	// Reused every frame when drawing the wireframe to avoid per-frame allocations.
	worldVerts []rl.Vector3
}

// NewRegistry returns a registry with no textures loaded.
func NewRegistry() *Registry {
	return &Registry{textures: make(map[string]rl.Texture2D)}
}

// ensureTextures uploads the generated sprite images once.
func (r *Registry) ensureTextures() {
	if r.loaded {
		return
	}
	r.loaded = true
	sources := map[string]func() *image.NRGBA{
		DotTexture:   texture.Dot,
		FlashTexture: texture.Glow,
	}
	for name, gen := range sources {
		src := gen()
		// straight-alpha RGBA8 bytes go to raylib as is; NewImageFromImage would read premultiplied values.
		// img points at Go memory, so it is not passed to UnloadImage.
		img := rl.NewImage(src.Pix, int32(src.Rect.Dx()), int32(src.Rect.Dy()), 1, rl.UncompressedR8g8b8a8)
		tex := rl.LoadTextureFromImage(img)
		if !rl.IsTextureValid(tex) {
			continue
		}
		rl.SetTextureFilter(tex, rl.FilterBilinear)
		r.textures[name] = tex
	}
}

// Texture returns a loaded texture by name.
func (r *Registry) Texture(name string) (rl.Texture2D, bool) {
	r.ensureTextures()
	tex, ok := r.textures[name]
	return tex, ok
}

// Unload frees all GPU textures. Call before the window closes.
func (r *Registry) Unload() {
	for name, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, name)
	}
	r.loaded = false
}

// Vec converts a mathgl vector to raylib's.
func Vec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// DrawPoints draws pts transformed by m. Textured points are camera-facing round sprites of
// world size size; untextured points are single pixels. Must be called inside BeginMode3D.
func (r *Registry) DrawPoints(cam rl.Camera3D, pts []mgl32.Vec3, m mgl32.Mat4, size float32, tint rl.Color, textured bool) {
	if textured {
		if tex, ok := r.Texture(DotTexture); ok {
			for _, p := range pts {
				rl.DrawBillboard(cam, tex, Vec(mgl32.TransformCoordinate(p, m)), size, tint)
			}
			return
		}
	}
	for _, p := range pts {
		rl.DrawPoint3D(Vec(mgl32.TransformCoordinate(p, m)), tint)
	}
}

// DrawWireframe draws every edge of w transformed by m.
func (r *Registry) DrawWireframe(w field.Wireframe, m mgl32.Mat4, tint rl.Color) {
	if cap(r.worldVerts) < len(w.Vertices) {
		r.worldVerts = make([]rl.Vector3, len(w.Vertices))
	}
	verts := r.worldVerts[:len(w.Vertices)]
	for i, v := range w.Vertices {
		verts[i] = Vec(mgl32.TransformCoordinate(v, m))
	}
	for _, e := range w.Edges {
		rl.DrawLine3D(verts[e[0]], verts[e[1]], tint)
	}
}

// DrawSolidSphere draws an opaque sphere.
func (r *Registry) DrawSolidSphere(center mgl32.Vec3, radius float32, rings, slices int, tint rl.Color) {
	rl.DrawSphereEx(Vec(center), radius, int32(rings), int32(slices), tint)
}

// DrawSprite draws a camera-facing sprite with the named texture. Additive sprites brighten
// whatever is behind them. Skipped when the texture is missing.
func (r *Registry) DrawSprite(cam rl.Camera3D, name string, pos mgl32.Vec3, size float32, tint rl.Color, additive bool) {
	tex, ok := r.Texture(name)
	if !ok {
		return
	}
	if additive {
		rl.BeginBlendMode(rl.BlendAdditive)
		defer rl.EndBlendMode()
	}
	rl.DrawBillboard(cam, tex, Vec(pos), size, tint)
}
