package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'basic'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	depth := flag.Int("depth", 3, "Maximum reflection depth")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	background := flag.String("background", "", "Background color: 'black' or 'white' (default: scene's own)")
	outputRoot := flag.String("output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene_type>/render_<timestamp>.png")
		return
	}

	selectedScene, info, err := scene.NewSceneByName(*sceneType)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}

	config, err := buildRenderConfig(info, *width, *height, *depth, *workers, *background)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())
	if err != nil {
		log.Fatalf("Error creating raytracer: %v", err)
	}

	raster, _, err := raytracer.Render(context.Background())
	if err != nil {
		log.Fatalf("Error rendering: %v", err)
	}

	filename, err := saveRaster(raster, *outputRoot, *sceneType, time.Now())
	if err != nil {
		log.Fatalf("Error saving render: %v", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// buildRenderConfig applies command line overrides to the default config
func buildRenderConfig(info scene.SceneInfo, width, height, depth, workers int, background string) (renderer.RenderConfig, error) {
	config := renderer.DefaultRenderConfig()
	config.Width = width
	config.Height = height
	config.NumWorkers = workers
	config.Tracer.MaxDepth = depth
	config.Tracer.Background = info.Background

	switch background {
	case "":
	case "black":
		config.Tracer.Background = core.Black
	case "white":
		config.Tracer.Background = core.White
	default:
		return renderer.RenderConfig{}, fmt.Errorf("unknown background %q", background)
	}

	if err := config.Validate(); err != nil {
		return renderer.RenderConfig{}, err
	}
	return config, nil
}

// saveRaster writes raster as <root>/<sceneType>/render_<timestamp>.png
func saveRaster(raster *renderer.Raster, root, sceneType string, now time.Time) (string, error) {
	outputDir := filepath.Join(root, sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := now.Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, raster.ToImage()); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return filename, nil
}
