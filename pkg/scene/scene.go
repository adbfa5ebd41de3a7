package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// It is built once by NewScene and must not be mutated afterwards;
// renders read it concurrently without locking.
type Scene struct {
	Name    string
	Spheres []*geometry.Sphere // Order decides ties in ClosestIntersection
	Lights  []lights.Light     // Order of accumulation in the shader
}

// Hit is the nearest sphere along a ray and its ray parameter
type Hit struct {
	Sphere *geometry.Sphere
	T      float64
}

// NewScene validates every sphere and light and returns a scene that owns
// copies of the given slices.
func NewScene(name string, spheres []*geometry.Sphere, sceneLights []lights.Light) (*Scene, error) {
	for i, s := range spheres {
		if s == nil {
			return nil, fmt.Errorf("scene %q: sphere %d is nil", name, i)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("scene %q: sphere %d: %w", name, i, err)
		}
	}
	for i, l := range sceneLights {
		if l == nil {
			return nil, fmt.Errorf("scene %q: light %d is nil", name, i)
		}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("scene %q: light %d: %w", name, i, err)
		}
	}

	return &Scene{
		Name:    name,
		Spheres: append([]*geometry.Sphere(nil), spheres...),
		Lights:  append([]lights.Light(nil), sceneLights...),
	}, nil
}

// GetSpheres returns the spheres in scene order
func (s *Scene) GetSpheres() []*geometry.Sphere {
	return s.Spheres
}

// GetLights returns the lights in scene order
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// ClosestIntersection finds the nearest root in [tMin, tMax] over all spheres.
// Roots are compared with a strict less-than, so on an exact tie the sphere
// listed first wins.
func (s *Scene) ClosestIntersection(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	closestT := math.Inf(1)
	var closest *geometry.Sphere

	for _, sphere := range s.Spheres {
		t1, t2 := sphere.IntersectRay(ray)
		if t1 >= tMin && t1 <= tMax && t1 < closestT {
			closestT = t1
			closest = sphere
		}
		if t2 >= tMin && t2 <= tMax && t2 < closestT {
			closestT = t2
			closest = sphere
		}
	}

	if closest == nil {
		return Hit{}, false
	}
	return Hit{Sphere: closest, T: closestT}, true
}
