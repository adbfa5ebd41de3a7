package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int     // Total number of pixels rendered
	ClippedPixels int     // Pixels with at least one channel outside [0, 255] before clamping
	LuminanceSum  float64 // Sum of clamped pixel luminance on the 0-255 scale
}

// AverageLuminance returns the mean clamped luminance, 0 for an empty render
func (s RenderStats) AverageLuminance() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return s.LuminanceSum / float64(s.TotalPixels)
}

// Merge adds the counts from other
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.ClippedPixels += other.ClippedPixels
	s.LuminanceSum += other.LuminanceSum
}

// addPixel records one unclamped pixel color
func (s *RenderStats) addPixel(c core.Vec3) {
	s.TotalPixels++
	if core.ClampColor(c) != c {
		s.ClippedPixels++
	}
	s.LuminanceSum += luminance(core.ClampColor(c))
}

// luminance uses the standard weights: 0.299*R + 0.587*G + 0.114*B
func luminance(c core.Vec3) float64 {
	return 0.299*c.X + 0.587*c.Y + 0.114*c.Z
}
