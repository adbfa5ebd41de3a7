package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestRaster_SetClampsChannels(t *testing.T) {
	raster := NewRaster(3, 2)
	if len(raster.Pix) != 3*2*3 {
		t.Fatalf("Expected %d bytes, got %d", 18, len(raster.Pix))
	}

	raster.Set(1, 2, core.NewVec3(300, -20, 127.9))
	r, g, b := raster.At(1, 2)
	if r != 255 || g != 0 || b != 127 {
		t.Errorf("Expected (255,0,127), got (%d,%d,%d)", r, g, b)
	}

	raster.Set(0, 0, core.NewVec3(math.NaN(), math.Inf(1), 1))
	r, g, b = raster.At(0, 0)
	if r != 0 || g != 255 || b != 1 {
		t.Errorf("Expected (0,255,1), got (%d,%d,%d)", r, g, b)
	}
}

func TestRaster_RowMajorLayout(t *testing.T) {
	raster := NewRaster(4, 3)
	raster.Set(2, 1, core.NewVec3(1, 2, 3))

	offset := (2*4 + 1) * 3
	if raster.Pix[offset] != 1 || raster.Pix[offset+1] != 2 || raster.Pix[offset+2] != 3 {
		t.Errorf("Pixel (2,1) not stored at offset %d: %v", offset, raster.Pix[offset:offset+3])
	}
}

func TestRaster_ToImage(t *testing.T) {
	raster := NewRaster(2, 3)
	raster.Set(2, 1, core.NewVec3(10, 20, 30))

	img := raster.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 3 {
		t.Fatalf("Expected 2x3 image, got %v", img.Bounds())
	}

	got := img.RGBAAt(1, 2)
	expected := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got != expected {
		t.Errorf("Expected %v at column 1 row 2, got %v", expected, got)
	}
	if img.RGBAAt(0, 0) != (color.RGBA{A: 255}) {
		t.Errorf("Expected opaque black elsewhere, got %v", img.RGBAAt(0, 0))
	}
}
