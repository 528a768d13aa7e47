package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// config holds the command line settings; zero values keep the scene defaults
type config struct {
	sceneName string
	width     int
	samples   int
	depth     int
	workers   int
	seed      int64
	texture   string
	output    string
}

func main() {
	// Parse command line flags
	var cfg config
	flag.StringVar(&cfg.sceneName, "scene", scene.DefaultSceneName, "Scene to render (see -list)")
	list := flag.Bool("list", false, "List available scenes")
	flag.IntVar(&cfg.width, "width", 0, "Image width in pixels (0 = scene default, height follows the aspect ratio)")
	flag.IntVar(&cfg.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&cfg.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.IntVar(&cfg.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.Int64Var(&cfg.seed, "seed", scene.DefaultOptions().Seed, "Random seed for scene content and sampling")
	flag.StringVar(&cfg.texture, "texture", scene.DefaultTexturePath, "Image file for the earth texture")
	flag.StringVar(&cfg.output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -output is set")
		return
	}

	if *list {
		printScenes()
		return
	}

	if err := run(cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-20s %s\n", info.Name, info.Description)
	}
}

// run builds the scene, renders it and saves the PNG
func run(cfg config, logger core.Logger) error {
	logger.Printf("Starting path tracer...\n")

	selectedScene, err := createScene(cfg)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene...\n", selectedScene.Name)

	if bvh, ok := selectedScene.World.(*geometry.BVHNode); ok {
		stats := bvh.Stats()
		logger.Printf("BVH: %d nodes, %d leaves, max depth %d\n", stats.TotalNodes, stats.LeafNodes, stats.MaxDepth)
	}

	width, height := imageSize(selectedScene, cfg.width)
	sampling := samplingConfig(selectedScene, cfg)

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = cfg.workers
	renderConfig.Seed = cfg.seed

	raytracer, err := renderer.NewRaytracer(selectedScene, width, height, sampling, renderConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to create raytracer: %w", err)
	}

	img, stats := raytracer.Render()

	logger.Printf("Render completed in %v\n", stats.Duration)
	logger.Printf("Samples per pixel: %.1f (%d total)\n", stats.AverageSamples, stats.TotalSamples)
	logger.Printf("Average luminance: %.4f\n", renderer.CalculateAverageLuminance(img))

	filename := cfg.output
	if filename == "" {
		filename = createOutputPath(selectedScene.Name, time.Now())
	}
	if err := savePNG(filename, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the named scene with the command line options
func createScene(cfg config) (*scene.Scene, error) {
	opts := scene.DefaultOptions()
	opts.Seed = cfg.seed
	opts.TexturePath = cfg.texture

	return scene.Build(cfg.sceneName, opts)
}

// imageSize returns the scene's default size, or the requested width at the scene's aspect ratio
func imageSize(s *scene.Scene, width int) (int, int) {
	if width <= 0 {
		return s.Width, s.Height
	}
	height := max(1, width*s.Height/s.Width)
	return width, height
}

// samplingConfig applies command line overrides to the scene's sampling settings
func samplingConfig(s *scene.Scene, cfg config) renderer.SamplingConfig {
	sampling := s.Sampling
	if cfg.samples > 0 {
		sampling.SamplesPerPixel = cfg.samples
	}
	if cfg.depth > 0 {
		sampling.MaxDepth = cfg.depth
	}
	return sampling
}

// createOutputPath returns a timestamped PNG path under output/<scene>
func createOutputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// savePNG writes img to filename, creating parent directories as needed
func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}
