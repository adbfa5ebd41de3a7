package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera looking down +z
type CameraConfig struct {
	Origin             core.Vec3 // Camera position
	ViewportWidth      float64   // Viewport width in world units; height follows the aspect ratio
	ProjectionDistance float64   // Distance from the origin to the viewport plane
}

// DefaultCameraConfig returns a camera at the origin with a unit viewport one unit away
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:             core.NewVec3(0, 0, 0),
		ViewportWidth:      1.0,
		ProjectionDistance: 1.0,
	}
}

// Camera generates primary rays for pixel centers
type Camera struct {
	origin         core.Vec3
	width, height  int
	viewportWidth  float64
	viewportHeight float64
	distance       float64
}

// NewCamera creates a camera for a width x height frame
func NewCamera(config CameraConfig, width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)
	return &Camera{
		origin:         config.Origin,
		width:          width,
		height:         height,
		viewportWidth:  config.ViewportWidth,
		viewportHeight: config.ViewportWidth / aspectRatio,
		distance:       config.ProjectionDistance,
	}
}

// GetRay returns the normalized primary ray through the center of pixel
// (row, col). Row 0 is the top of the image.
func (c *Camera) GetRay(row, col int) core.Ray {
	x := (float64(col)+0.5)/float64(c.width)*c.viewportWidth - c.viewportWidth/2
	// The vertical offset is half the viewport width, not half its height:
	// the top edge sits at the same height for every aspect ratio.
	y := -(float64(row)+0.5)/float64(c.height)*c.viewportHeight + c.viewportWidth/2

	direction := core.NewVec3(x, y, c.distance).Normalize()
	return core.NewRay(c.origin, direction)
}
