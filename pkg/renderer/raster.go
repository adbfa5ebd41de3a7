package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Raster is a row-major height x width x 3 buffer of 8-bit RGB pixels.
// Pixel (row, col) starts at Pix[(row*Width+col)*3].
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRaster allocates a black raster
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// bounds returns the full frame with X as the column and Y as the row
func (r *Raster) bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

func (r *Raster) offset(row, col int) int {
	return (row*r.Width + col) * 3
}

// Set stores c at (row, col), clamping every channel to [0, 255]
func (r *Raster) Set(row, col int, c core.Vec3) {
	i := r.offset(row, col)
	r.Pix[i], r.Pix[i+1], r.Pix[i+2] = core.ToRGB(c)
}

// At returns the channels stored at (row, col)
func (r *Raster) At(row, col int) (red, green, blue uint8) {
	i := r.offset(row, col)
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

// ToImage converts the raster to an opaque RGBA image for encoding
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			red, green, blue := r.At(row, col)
			img.SetRGBA(col, row, color.RGBA{R: red, G: green, B: blue, A: 255})
		}
	}
	return img
}
