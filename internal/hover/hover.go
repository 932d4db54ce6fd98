// Package hover decides each frame whether the pointer is over the shell's inner core.
package hover

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"orbit-backdrop/internal/field"
	"orbit-backdrop/internal/pointer"
)

// Camera is a perspective camera. Fovy is the vertical field of view in degrees.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32
	Aspect   float32
	Near     float32
	Far      float32
}

// Projection returns the perspective matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
}

// View returns the look-at matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Ray is a half-line; Dir is unit length.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// RayFromNDC casts a ray from the camera through the point (ndcX, ndcY) of the viewport,
// both in [-1, 1] with y up. The near and far clip points are unprojected through the
// inverse view-projection; the ray starts at the camera.
func RayFromNDC(cam Camera, ndcX, ndcY float32) Ray {
	inv := cam.Projection().Mul4(cam.View()).Inv()
	near := unproject(inv, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(inv, mgl32.Vec4{ndcX, ndcY, 1, 1})
	return Ray{Origin: cam.Position, Dir: far.Sub(near).Normalize()}
}

func unproject(inv mgl32.Mat4, clip mgl32.Vec4) mgl32.Vec3 {
	v := inv.Mul4x1(clip)
	if v[3] == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v[3])
}

// HitsSphere reports whether r meets the sphere at a distance in [near, far] from the ray origin.
// A ray starting inside the sphere counts as a hit on the way out.
func HitsSphere(r Ray, center mgl32.Vec3, radius, near, far float32) bool {
	if radius <= 0 {
		return false
	}
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return false
	}
	sq := math32.Sqrt(disc)
	for _, d := range [2]float32{-b - sq, -b + sq} {
		if d >= near && d <= far {
			return true
		}
	}
	return false
}

// Detector tests the pointer against the inner core only; the wireframe shell and markers are ignored.
type Detector struct {
	tests uint64
}

// NewDetector returns a hover detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Hovered reports whether the ray through the pointer hits the shell's core.
// A shell without a core is never hovered.
func (d *Detector) Hovered(cam Camera, p pointer.State, shell *field.OrbitShell) bool {
	if shell == nil || shell.Core == nil {
		return false
	}
	d.tests++
	ray := RayFromNDC(cam, p.NDCX, p.NDCY)
	center := mgl32.TransformCoordinate(mgl32.Vec3{}, shell.Transform())
	return HitsSphere(ray, center, shell.CoreWorldRadius(), cam.Near, cam.Far)
}

// Tests counts ray casts performed.
func (d *Detector) Tests() uint64 {
	return d.tests
}
