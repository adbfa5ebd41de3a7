package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		row, col      int
		expected      core.Vec3 // before normalization
	}{
		{"single pixel looks straight ahead", 1, 1, 0, 0, core.NewVec3(0, 0, 1)},
		{"top-left of 2x2", 2, 2, 0, 0, core.NewVec3(-0.25, 0.25, 1)},
		{"bottom-right of 2x2", 2, 2, 1, 1, core.NewVec3(0.25, -0.25, 1)},
		{"wide frame bottom row", 4, 2, 1, 3, core.NewVec3(0.375, 0.125, 1)},
		{"wide frame top row", 4, 2, 0, 0, core.NewVec3(-0.375, 0.375, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(DefaultCameraConfig(), tt.width, tt.height)
			ray := camera.GetRay(tt.row, tt.col)

			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Expected origin at (0,0,0), got %v", ray.Origin)
			}
			expected := tt.expected.Normalize()
			if ray.Direction.Subtract(expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-12 {
				t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
			}
		})
	}
}

func TestCamera_CustomConfig(t *testing.T) {
	config := CameraConfig{
		Origin:             core.NewVec3(1, 2, 3),
		ViewportWidth:      2.0,
		ProjectionDistance: 4.0,
	}
	camera := NewCamera(config, 2, 2)

	ray := camera.GetRay(0, 1)
	if ray.Origin != config.Origin {
		t.Errorf("Expected origin %v, got %v", config.Origin, ray.Origin)
	}
	// x = 1.5/2*2 - 1 = 0.5, y = -0.5/2*2 + 1 = 0.5
	expected := core.NewVec3(0.5, 0.5, 4).Normalize()
	if ray.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_Symmetry(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 10, 10)

	left := camera.GetRay(3, 0).Direction
	right := camera.GetRay(3, 9).Direction
	if math.Abs(left.X+right.X) > 1e-12 || math.Abs(left.Y-right.Y) > 1e-12 {
		t.Errorf("Expected mirrored columns, got %v and %v", left, right)
	}

	top := camera.GetRay(0, 4).Direction
	bottom := camera.GetRay(9, 4).Direction
	if math.Abs(top.Y+bottom.Y) > 1e-12 {
		t.Errorf("Expected mirrored rows in a square frame, got %v and %v", top, bottom)
	}
}
