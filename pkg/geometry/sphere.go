package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NoSpecular marks a sphere without a specular highlight
const NoSpecular = -1

// Validation errors returned by NewSphere
var (
	ErrInvalidRadius       = errors.New("sphere radius must be positive and finite")
	ErrInvalidReflectivity = errors.New("sphere reflectivity must be in [0, 1]")
	ErrInvalidSpecular     = errors.New("sphere specular exponent must be >= 0 or -1")
	ErrInvalidCenter       = errors.New("sphere center must be finite")
)

// Sphere represents a sphere shape with its surface properties.
// Treat it as immutable once built.
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	Color      core.Vec3 // 0-255 scale
	Specular   int       // Phong exponent, or NoSpecular
	Reflective float64   // blend weight of the mirror reflection, in [0, 1]
}

// NewSphere creates a new sphere, rejecting invalid parameters
func NewSphere(center core.Vec3, radius float64, color core.Vec3, specular int, reflective float64) (*Sphere, error) {
	s := &Sphere{
		Center:     center,
		Radius:     radius,
		Color:      color,
		Specular:   specular,
		Reflective: reflective,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the sphere invariants
func (s *Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: got %v", ErrInvalidCenter, s.Center)
	}
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, s.Radius)
	}
	if !(s.Reflective >= 0 && s.Reflective <= 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidReflectivity, s.Reflective)
	}
	if s.Specular < NoSpecular {
		return fmt.Errorf("%w: got %d", ErrInvalidSpecular, s.Specular)
	}
	return nil
}

// HasSpecular reports whether the sphere has a specular highlight
func (s *Sphere) HasSpecular() bool {
	return s.Specular != NoSpecular
}

// IntersectRay solves |O + tD - C| = r for t.
// It returns t1 = (-b + sqrt(disc)) / 2a and t2 = (-b - sqrt(disc)) / 2a,
// so t1 >= t2. With no real intersection, or a zero-length direction,
// both roots are +Inf.
func (s *Sphere) IntersectRay(ray core.Ray) (t1, t2 float64) {
	noHit := math.Inf(1)

	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// Degenerate direction
	if a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return noHit, noHit
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 || math.IsNaN(discriminant) {
		return noHit, noHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-b + sqrtD) / (2 * a)
	t2 = (-b - sqrtD) / (2 * a)

	if math.IsNaN(t1) {
		t1 = noHit
	}
	if math.IsNaN(t2) {
		t2 = noHit
	}
	return t1, t2
}

// Normal returns the outward unit normal at a point on the surface
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
