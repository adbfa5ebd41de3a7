package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

func TestComputeLighting_AmbientOnly(t *testing.T) {
	ambient := []lights.Light{lights.NewAmbientLight(0.35)}

	inputs := []struct {
		name                string
		point, normal, view core.Vec3
		specular            int
	}{
		{"ordinary", core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1), 500},
		{"zero normal", core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 10},
		{"zero view", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 0), geometry.NoSpecular},
	}

	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			got := ComputeLighting(in.point, in.normal, in.view, in.specular, ambient)
			if got != 0.35 {
				t.Errorf("Expected exactly 0.35, got %v", got)
			}
		})
	}
}

func TestComputeLighting_Terms(t *testing.T) {
	origin := core.NewVec3(0, 0, 0)
	up := core.NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		normal   core.Vec3
		view     core.Vec3
		specular int
		lights   []lights.Light
		expected float64
	}{
		{
			name:     "no lights",
			normal:   up,
			view:     up,
			specular: 10,
			expected: 0,
		},
		{
			name:     "point light overhead diffuse only",
			normal:   up,
			view:     up,
			specular: geometry.NoSpecular,
			lights:   []lights.Light{lights.NewPointLight(0.6, core.NewVec3(0, 2, 0))},
			expected: 0.6,
		},
		{
			name:     "point light overhead with specular",
			normal:   up,
			view:     up,
			specular: 10,
			lights:   []lights.Light{lights.NewPointLight(0.6, core.NewVec3(0, 2, 0))},
			expected: 1.2,
		},
		{
			name:     "diffuse is independent of normal length",
			normal:   core.NewVec3(0, 5, 0),
			view:     core.NewVec3(0, -1, 0),
			specular: 10,
			lights:   []lights.Light{lights.NewDirectionalLight(0.5, core.NewVec3(0, 3, 0))},
			expected: 0.5,
		},
		{
			name:     "directional light at 60 degrees",
			normal:   up,
			view:     core.NewVec3(0, -1, 0),
			specular: geometry.NoSpecular,
			lights:   []lights.Light{lights.NewDirectionalLight(1, core.NewVec3(math.Sqrt(3), 1, 0))},
			expected: 0.5,
		},
		{
			name:     "light behind surface",
			normal:   up,
			view:     up,
			specular: 10,
			lights:   []lights.Light{lights.NewDirectionalLight(1, core.NewVec3(0, -1, 0))},
			expected: 0,
		},
		{
			name:     "point light at the surface point",
			normal:   up,
			view:     up,
			specular: 10,
			lights:   []lights.Light{lights.NewPointLight(1, origin)},
			expected: 0,
		},
		{
			name:     "zero directional light",
			normal:   up,
			view:     up,
			specular: 10,
			lights:   []lights.Light{lights.NewDirectionalLight(1, core.NewVec3(0, 0, 0))},
			expected: 0,
		},
		{
			name:     "zero view skips specular",
			normal:   up,
			view:     core.NewVec3(0, 0, 0),
			specular: 10,
			lights:   []lights.Light{lights.NewPointLight(0.6, core.NewVec3(0, 2, 0))},
			expected: 0.6,
		},
		{
			name:     "non-finite intensity contributes nothing",
			normal:   up,
			view:     up,
			specular: 10,
			lights: []lights.Light{
				lights.NewAmbientLight(math.NaN()),
				lights.NewPointLight(math.Inf(1), core.NewVec3(0, 2, 0)),
				lights.NewAmbientLight(0.1),
			},
			expected: 0.1,
		},
		{
			name:     "all three kinds accumulate",
			normal:   up,
			view:     up,
			specular: geometry.NoSpecular,
			lights: []lights.Light{
				lights.NewAmbientLight(0.2),
				lights.NewPointLight(0.6, core.NewVec3(0, 4, 0)),
				lights.NewDirectionalLight(0.2, core.NewVec3(0, 1, 0)),
			},
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLighting(origin, tt.normal, tt.view, tt.specular, tt.lights)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestComputeLighting_SpecularExponent(t *testing.T) {
	up := core.NewVec3(0, 1, 0)
	// Light at 45 degrees in the xy plane, viewer straight up: cos(angle(R, V)) = cos(45°)
	light := []lights.Light{lights.NewDirectionalLight(1, core.NewVec3(1, 1, 0))}
	cos45 := math.Sqrt(0.5)

	for _, s := range []int{1, 10, 500} {
		got := ComputeLighting(core.NewVec3(0, 0, 0), up, up, s, light)
		expected := cos45 + math.Pow(cos45, float64(s))
		if math.Abs(got-expected) > 1e-9 {
			t.Errorf("s=%d: expected %f, got %f", s, expected, got)
		}
	}

	// Exponent 0 makes any visible highlight full strength
	got := ComputeLighting(core.NewVec3(0, 0, 0), up, up, 0, light)
	if math.Abs(got-(cos45+1)) > 1e-9 {
		t.Errorf("s=0: expected %f, got %f", cos45+1, got)
	}
}
