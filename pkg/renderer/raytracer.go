package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// RenderConfig controls how the image is split across goroutines
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for the per-tile random streams
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		Seed:       42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Shape
	GetCamera() *Camera
	GetBackground() integrator.Background
}

// Raytracer handles the rendering process
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator *integrator.PathTracingIntegrator
	width      int
	height     int
	sampling   SamplingConfig
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer for the scene at the given resolution
func NewRaytracer(scene Scene, width, height int, sampling SamplingConfig, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if sampling.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", sampling.SamplesPerPixel)
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		world:      scene.GetWorld(),
		camera:     scene.GetCamera(),
		integrator: integrator.NewPathTracingIntegrator(scene.GetBackground()),
		width:      width,
		height:     height,
		sampling:   sampling,
		config:     config,
		logger:     logger,
	}, nil
}

// Render renders the full image in parallel tiles and returns it with render statistics
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize, rt.config.Seed)

	workerPool := NewWorkerPool(rt, len(tiles), rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d: %d tiles, %d samples per pixel (using %d workers)...\n",
		rt.width, rt.height, len(tiles), rt.sampling.SamplesPerPixel, workerPool.GetNumWorkers())

	workerPool.Start()
	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: i, Image: img})
	}

	stats := RenderStats{NumTiles: len(tiles), NumWorkers: workerPool.GetNumWorkers()}
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			break
		}
		stats.Add(result.Stats)
	}
	workerPool.Stop()

	stats.Duration = time.Since(start)
	return img, stats
}

// RenderBounds renders the pixels inside bounds into img, drawing randomness from sampler
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA, sampler core.Sampler) RenderStats {
	stats := RenderStats{}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Image rows run top-down, camera t runs bottom-up
		j := rt.height - 1 - y
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixel := PixelStats{}

			for sample := 0; sample < rt.sampling.SamplesPerPixel; sample++ {
				// Convert pixel coordinates to normalized coordinates with jitter
				jitter := sampler.Get2D()
				s := (float64(i) + jitter.X) / float64(rt.width)
				t := (float64(j) + jitter.Y) / float64(rt.height)

				ray := rt.camera.GetRay(s, t, sampler)
				pixel.AddSample(rt.integrator.RayColor(ray, rt.world, rt.sampling.MaxDepth, sampler))
			}

			img.SetRGBA(i, y, ToRGBA(pixel.ColorAccum, pixel.SampleCount))
			stats.TotalPixels++
			stats.TotalSamples += pixel.SampleCount
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// ToRGBA averages an accumulated color over samples and converts it to 8-bit with gamma 2
func ToRGBA(sum core.Vec3, samples int) color.RGBA {
	if samples <= 0 {
		return color.RGBA{A: 255}
	}
	scale := 1.0 / float64(samples)
	return color.RGBA{
		R: toByte(sum.X * scale),
		G: toByte(sum.Y * scale),
		B: toByte(sum.Z * scale),
		A: 255,
	}
}

// toByte applies gamma-2 correction and clamps to [0, 255]
func toByte(linear float64) uint8 {
	// NaN and negative radiance map to black
	if !(linear > 0) {
		return 0
	}
	v := math.Round(math.Sqrt(linear) * 255)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
