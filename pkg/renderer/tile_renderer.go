package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Tile represents a rectangular region of the frame
type Tile struct {
	ID     int
	Bounds image.Rectangle // X is the column, Y is the row
}

// NewTileGrid splits a width x height frame into tiles of at most tileSize pixels per side
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene, camera and integrator
func NewTileRenderer(s *scene.Scene, camera *Camera, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderTileBounds renders the pixels within bounds into raster.
// Tiles with disjoint bounds may be rendered concurrently into the same raster.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, raster *Raster) RenderStats {
	var stats RenderStats

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			ray := tr.camera.GetRay(row, col)
			color := tr.integrator.RayColor(ray, tr.scene)
			raster.Set(row, col, color)
			stats.addPixel(color)
		}
	}

	return stats
}
