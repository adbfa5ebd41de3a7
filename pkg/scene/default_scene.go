package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// sphereSpec is the raw description of one built-in sphere
type sphereSpec struct {
	center     core.Vec3
	radius     float64
	color      core.Vec3
	specular   int
	reflective float64
}

// threeSpheres is the classic arrangement: shiny red, shiny blue and a
// duller green sphere resting on a huge yellow ground sphere.
var threeSpheres = []sphereSpec{
	{core.NewVec3(0, -1, 3), 1, core.NewVec3(255, 0, 0), 500, 0.2},
	{core.NewVec3(2, 0, 4), 1, core.NewVec3(0, 0, 255), 500, 0.3},
	{core.NewVec3(-2, 0, 4), 1, core.NewVec3(0, 255, 0), 10, 0.4},
	{core.NewVec3(0, -5001, 0), 5000, core.NewVec3(255, 255, 0), 1000, 0.5},
}

func threeSphereLights() []lights.Light {
	return []lights.Light{
		lights.NewAmbientLight(0.2),
		lights.NewPointLight(0.6, core.NewVec3(2, 1, 0)),
		lights.NewDirectionalLight(0.2, core.NewVec3(1, 4, 4)),
	}
}

// NewDefaultScene creates the reflective three-sphere scene
func NewDefaultScene() *Scene {
	return mustBuild("default", threeSpheres, true)
}

// NewBasicScene creates the same spheres without any reflectivity.
// It reproduces the older non-reflective renders; pair it with a white background.
func NewBasicScene() *Scene {
	return mustBuild("basic", threeSpheres, false)
}

func mustBuild(name string, specs []sphereSpec, reflective bool) *Scene {
	spheres := make([]*geometry.Sphere, 0, len(specs))
	for _, sp := range specs {
		r := sp.reflective
		if !reflective {
			r = 0
		}
		s, err := geometry.NewSphere(sp.center, sp.radius, sp.color, sp.specular, r)
		if err != nil {
			// Built-in data is constant; an error here is a programming bug
			panic(err)
		}
		spheres = append(spheres, s)
	}

	s, err := NewScene(name, spheres, threeSphereLights())
	if err != nil {
		panic(err)
	}
	return s
}
