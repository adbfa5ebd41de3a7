package lights

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// ErrInvalidLight is returned for lights with non-finite parameters
var ErrInvalidLight = errors.New("invalid light")

// Light is one of AmbientLight, PointLight or DirectionalLight.
// The set is closed: only this package can add cases.
type Light interface {
	Type() LightType
	GetIntensity() float64
	Validate() error
	isLight()
}

// AmbientLight illuminates every point equally
type AmbientLight struct {
	Intensity float64
}

// PointLight radiates from a position in space
type PointLight struct {
	Intensity float64
	Position  core.Vec3
}

// DirectionalLight arrives from infinitely far away.
// Direction points from the surface toward the light and need not be unit length.
type DirectionalLight struct {
	Intensity float64
	Direction core.Vec3
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(intensity float64) *AmbientLight {
	return &AmbientLight{Intensity: intensity}
}

// NewPointLight creates a point light at position
func NewPointLight(intensity float64, position core.Vec3) *PointLight {
	return &PointLight{Intensity: intensity, Position: position}
}

// NewDirectionalLight creates a directional light
func NewDirectionalLight(intensity float64, direction core.Vec3) *DirectionalLight {
	return &DirectionalLight{Intensity: intensity, Direction: direction}
}

func (l *AmbientLight) Type() LightType     { return LightTypeAmbient }
func (l *PointLight) Type() LightType       { return LightTypePoint }
func (l *DirectionalLight) Type() LightType { return LightTypeDirectional }

func (l *AmbientLight) GetIntensity() float64     { return l.Intensity }
func (l *PointLight) GetIntensity() float64       { return l.Intensity }
func (l *DirectionalLight) GetIntensity() float64 { return l.Intensity }

func (*AmbientLight) isLight()     {}
func (*PointLight) isLight()       {}
func (*DirectionalLight) isLight() {}

func (l *AmbientLight) Validate() error {
	return validateIntensity(l.Type(), l.Intensity)
}

func (l *PointLight) Validate() error {
	if err := validateIntensity(l.Type(), l.Intensity); err != nil {
		return err
	}
	if !l.Position.IsFinite() {
		return fmt.Errorf("%w: point light position %v", ErrInvalidLight, l.Position)
	}
	return nil
}

// Validate accepts a zero direction; such a light only ever contributes nothing.
func (l *DirectionalLight) Validate() error {
	if err := validateIntensity(l.Type(), l.Intensity); err != nil {
		return err
	}
	if !l.Direction.IsFinite() {
		return fmt.Errorf("%w: directional light direction %v", ErrInvalidLight, l.Direction)
	}
	return nil
}

func validateIntensity(kind LightType, intensity float64) error {
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) {
		return fmt.Errorf("%w: %s light intensity %g", ErrInvalidLight, kind, intensity)
	}
	return nil
}

// ToLight returns the direction from point toward the light, unnormalized.
// ok is false for ambient lights, which have no direction.
func ToLight(light Light, point core.Vec3) (dir core.Vec3, ok bool) {
	switch l := light.(type) {
	case *PointLight:
		return l.Position.Subtract(point), true
	case *DirectionalLight:
		return l.Direction, true
	default:
		return core.Vec3{}, false
	}
}
