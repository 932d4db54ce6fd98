package hover

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"orbit-backdrop/internal/config"
	"orbit-backdrop/internal/field"
	"orbit-backdrop/internal/pointer"
)

func testCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 5},
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     75,
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      1000,
	}
}

func TestRayThroughCenterLooksAtOrigin(t *testing.T) {
	r := RayFromNDC(testCamera(), 0, 0)
	if d := r.Dir.Sub(mgl32.Vec3{0, 0, -1}).Len(); d > 1e-4 {
		t.Errorf("Expected -Z direction, got %v", r.Dir)
	}
	if r.Origin != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("Expected ray to start at the camera, got %v", r.Origin)
	}
}

func TestRayFollowsNDC(t *testing.T) {
	r := RayFromNDC(testCamera(), 1, 1)
	if r.Dir[0] <= 0 || r.Dir[1] <= 0 {
		t.Errorf("Expected up-right direction for NDC (1,1), got %v", r.Dir)
	}
}

func TestHitsSphere(t *testing.T) {
	cases := []struct {
		name string
		ray  Ray
		want bool
	}{
		{"straight on", Ray{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}}, true},
		{"miss beside", Ray{mgl32.Vec3{3, 0, 5}, mgl32.Vec3{0, 0, -1}}, false},
		{"behind origin", Ray{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}}, false},
		{"from inside", Ray{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}}, true},
		{"tangent", Ray{mgl32.Vec3{1, 0, 5}, mgl32.Vec3{0, 0, -1}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitsSphere(tc.ray, mgl32.Vec3{}, 1, 0.1, 1000); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestHitsSphereRespectsFar(t *testing.T) {
	r := Ray{mgl32.Vec3{0, 0, 50}, mgl32.Vec3{0, 0, -1}}
	if HitsSphere(r, mgl32.Vec3{}, 1, 0.1, 10) {
		t.Error("Expected a sphere beyond the far plane to be ignored")
	}
}

func TestDetectorCoreOnly(t *testing.T) {
	cfg := config.Default()
	scn := field.Build(cfg, field.NewRand(1))
	det := NewDetector()
	cam := testCamera()

	cases := []struct {
		name  string
		ndcY  float32
		scale float32
		want  bool
	}{
		{"center", 0, 1, true},
		{"inside core silhouette", 0.4, 1, true},
		{"on shell but outside core", 0.6, 1, false},
		{"core shrinks with shell", 0.4, 0.65, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scn.Shell.Scale = tc.scale
			p := pointer.State{NDCY: tc.ndcY}
			if got := det.Hovered(cam, p, &scn.Shell); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
	if det.Tests() != uint64(len(cases)) {
		t.Errorf("Expected %d ray tests, got %d", len(cases), det.Tests())
	}
}

func TestDetectorWithoutCore(t *testing.T) {
	cfg := config.Default()
	cfg.Variant = config.VariantClassic
	scn := field.Build(cfg, field.NewRand(1))
	if NewDetector().Hovered(testCamera(), pointer.State{}, &scn.Shell) {
		t.Error("Expected no hover without a core")
	}
}
