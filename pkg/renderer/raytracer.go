package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidConfig is returned when a RenderConfig cannot be rendered
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	Camera     CameraConfig
	Tracer     integrator.TracerConfig
	TileSize   int // Size of each tile (32x32 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      400,
		Height:     400,
		Camera:     DefaultCameraConfig(),
		Tracer:     integrator.DefaultTracerConfig(),
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Validate checks the config before any pixel is traced
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.NumWorkers)
	}
	if !(c.Camera.ViewportWidth > 0) || math.IsInf(c.Camera.ViewportWidth, 0) {
		return fmt.Errorf("%w: viewport width %g", ErrInvalidConfig, c.Camera.ViewportWidth)
	}
	if !(c.Camera.ProjectionDistance > 0) || math.IsInf(c.Camera.ProjectionDistance, 0) {
		return fmt.Errorf("%w: projection distance %g", ErrInvalidConfig, c.Camera.ProjectionDistance)
	}
	if !c.Camera.Origin.IsFinite() {
		return fmt.Errorf("%w: camera origin %v", ErrInvalidConfig, c.Camera.Origin)
	}
	if err := c.Tracer.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Raytracer renders a scene into a raster, one tile per task
type Raytracer struct {
	scene      *scene.Scene
	config     RenderConfig
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The scene is only read, never modified.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scene", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      s,
		config:     config,
		camera:     NewCamera(config.Camera, config.Width, config.Height),
		integrator: integrator.NewWhittedIntegrator(config.Tracer),
		logger:     logger,
	}, nil
}

// Config returns the render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// numWorkers resolves the configured worker count
func (rt *Raytracer) numWorkers() int {
	if rt.config.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return rt.config.NumWorkers
}

// Render traces every pixel and returns the finished raster.
// Tiles run in parallel without locking: each writes a disjoint region and
// the scene is read-only. A cancelled context yields no raster at all.
func (rt *Raytracer) Render(ctx context.Context) (*Raster, RenderStats, error) {
	startTime := time.Now()
	raster := NewRaster(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize)
	tileStats := make([]RenderStats, len(tiles))
	workers := rt.numWorkers()

	rt.logger.Printf("Rendering scene %q at %dx%d: %d tiles, %d workers, depth %d\n",
		rt.scene.Name, rt.config.Width, rt.config.Height, len(tiles), workers, rt.config.Tracer.MaxDepth)

	tileRenderer := NewTileRenderer(rt.scene, rt.camera, rt.integrator)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tile := range tiles {
		i, tile := i, tile
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tileStats[i] = tileRenderer.RenderTileBounds(tile.Bounds, raster)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	var stats RenderStats
	for _, s := range tileStats {
		stats.Merge(s)
	}

	rt.logger.Printf("Render completed in %v (%d pixels, %d clipped)\n",
		time.Since(startTime), stats.TotalPixels, stats.ClippedPixels)

	return raster, stats, nil
}

// RenderSequential traces every pixel on the calling goroutine in row-major order.
func (rt *Raytracer) RenderSequential() (*Raster, RenderStats) {
	raster := NewRaster(rt.config.Width, rt.config.Height)
	tileRenderer := NewTileRenderer(rt.scene, rt.camera, rt.integrator)
	stats := tileRenderer.RenderTileBounds(raster.bounds(), raster)
	return raster, stats
}
