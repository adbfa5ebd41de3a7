package core

import "math"

// MaxChannel is the upper bound of a displayable color channel
const MaxChannel = 255.0

// Common colors on the 0-255 scale
var (
	Black = Vec3{0, 0, 0}
	White = Vec3{MaxChannel, MaxChannel, MaxChannel}
)

// ClampColor clamps every channel of c to [0, 255]
func ClampColor(c Vec3) Vec3 {
	return c.Clamp(0, MaxChannel)
}

// ToRGB converts an unclamped color to 8-bit channels.
// Channels are clamped first and then truncated, so 254.9 becomes 254.
func ToRGB(c Vec3) (r, g, b uint8) {
	c = ClampColor(c)
	return uint8(math.Floor(c.X)), uint8(math.Floor(c.Y)), uint8(math.Floor(c.Z))
}

// Lerp blends a toward b by weight w: a*(1-w) + b*w
func Lerp(a, b Vec3, w float64) Vec3 {
	return a.Multiply(1 - w).Add(b.Multiply(w))
}
