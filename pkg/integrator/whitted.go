package integrator

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidTracerConfig is returned by TracerConfig.Validate
var ErrInvalidTracerConfig = errors.New("invalid tracer config")

// TracerConfig contains the tunables of the Whitted tracer
type TracerConfig struct {
	Background        core.Vec3 // Color of rays that hit nothing (0-255 scale)
	MaxDepth          int       // Reflection bounces for primary rays
	ReflectionEpsilon float64   // tMin of reflected rays, avoids self-intersection
	PrimaryTMin       float64   // tMin of primary rays
}

// DefaultTracerConfig returns sensible default values
func DefaultTracerConfig() TracerConfig {
	return TracerConfig{
		Background:        core.Black,
		MaxDepth:          3,
		ReflectionEpsilon: 0.001,
		PrimaryTMin:       1.0,
	}
}

// Validate checks the config for values the tracer cannot use
func (c TracerConfig) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d is negative", ErrInvalidTracerConfig, c.MaxDepth)
	}
	if !(c.ReflectionEpsilon >= 0) || math.IsInf(c.ReflectionEpsilon, 0) {
		return fmt.Errorf("%w: reflection epsilon %g", ErrInvalidTracerConfig, c.ReflectionEpsilon)
	}
	if !(c.PrimaryTMin >= 0) || math.IsInf(c.PrimaryTMin, 0) {
		return fmt.Errorf("%w: primary tMin %g", ErrInvalidTracerConfig, c.PrimaryTMin)
	}
	if !c.Background.IsFinite() {
		return fmt.Errorf("%w: background %v", ErrInvalidTracerConfig, c.Background)
	}
	return nil
}

// WhittedIntegrator traces mirror reflections to a fixed depth and shades
// every hit with ambient, Lambertian and Phong terms.
// It holds no mutable state and is safe for concurrent use.
type WhittedIntegrator struct {
	config TracerConfig
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config TracerConfig) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// Config returns the tracer configuration
func (w *WhittedIntegrator) Config() TracerConfig {
	return w.config
}

// RayColor traces a primary ray from PrimaryTMin to infinity with MaxDepth bounces
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Vec3 {
	return w.TraceRay(ray, w.config.PrimaryTMin, math.Inf(1), s, w.config.MaxDepth)
}

// TraceRay returns the unclamped color seen along ray.
// depth strictly decreases on every reflection, so at most depth+1 calls
// are made whatever the reflectivity.
func (w *WhittedIntegrator) TraceRay(ray core.Ray, tMin, tMax float64, s *scene.Scene, depth int) core.Vec3 {
	hit, ok := s.ClosestIntersection(ray, tMin, tMax)
	if !ok {
		return w.config.Background
	}

	sphere := hit.Sphere
	point := ray.At(hit.T)
	normal := sphere.Normal(point)
	view := ray.Direction.Negate()

	intensity := ComputeLighting(point, normal, view, sphere.Specular, s.GetLights())
	localColor := finiteColor(sphere.Color.Multiply(intensity))

	r := sphere.Reflective
	if depth <= 0 || r <= 0 {
		return localColor
	}

	reflected := core.NewRay(point, view.Reflect(normal))
	reflectedColor := finiteColor(w.TraceRay(reflected, w.config.ReflectionEpsilon, math.Inf(1), s, depth-1))

	return core.Lerp(localColor, reflectedColor, r)
}

// finiteColor maps a color with any non-finite channel to black
func finiteColor(c core.Vec3) core.Vec3 {
	if !c.IsFinite() {
		return core.Black
	}
	return c
}
