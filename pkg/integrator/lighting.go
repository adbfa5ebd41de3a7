package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// ComputeLighting returns the light intensity reaching point.
// Ambient lights add their intensity unconditionally. Point and directional
// lights each add at most one Lambertian diffuse term and, unless specular
// is geometry.NoSpecular, one Phong specular term. Lights are visited in
// slice order. A term whose denominator is zero, or whose value is not
// finite, contributes nothing.
func ComputeLighting(point, normal, view core.Vec3, specular int, sceneLights []lights.Light) float64 {
	intensity := 0.0
	normalLen := normal.Length()
	viewLen := view.Length()

	for _, light := range sceneLights {
		if light.Type() == lights.LightTypeAmbient {
			intensity += finiteOrZero(light.GetIntensity())
			continue
		}

		toLight, ok := lights.ToLight(light, point)
		if !ok {
			continue
		}
		intensity += diffuse(light.GetIntensity(), normal, normalLen, toLight)

		if specular != geometry.NoSpecular {
			intensity += phong(light.GetIntensity(), normal, toLight, view, viewLen, specular)
		}
	}

	return intensity
}

// diffuse is the Lambertian term: I * (N.L) / (|N||L|)
func diffuse(lightIntensity float64, normal core.Vec3, normalLen float64, toLight core.Vec3) float64 {
	nDotL := normal.Dot(toLight)
	if !(nDotL > 0) {
		return 0
	}
	denom := normalLen * toLight.Length()
	if denom == 0 {
		return 0
	}
	return finiteOrZero(lightIntensity * nDotL / denom)
}

// phong is the specular term: I * (R.V / (|R||V|))^s with R = 2N(N.L) - L
func phong(lightIntensity float64, normal, toLight, view core.Vec3, viewLen float64, specular int) float64 {
	r := toLight.Reflect(normal)
	rDotV := r.Dot(view)
	if !(rDotV > 0) {
		return 0
	}
	denom := r.Length() * viewLen
	if denom == 0 {
		return 0
	}
	return finiteOrZero(lightIntensity * math.Pow(rDotV/denom, float64(specular)))
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
