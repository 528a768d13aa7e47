package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// DefaultTexturePath is the earth texture used when Options leaves it empty
const DefaultTexturePath = "earthmap.jpg"

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      geometry.Shape // Root of the scene graph, usually a BVH
	Camera     *renderer.Camera
	Background integrator.Background
	Width      int // Default image width
	Height     int // Default image height
	Sampling   renderer.SamplingConfig
}

// Options controls scene construction
type Options struct {
	Seed        int64  // Seed for random scene content and BVH axis choices
	TexturePath string // Image for the earth texture
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Seed:        42,
		TexturePath: DefaultTexturePath,
	}
}

// GetWorld returns the root shape of the scene
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackground returns the radiance seen by rays that escape the scene
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// view holds the per-scene camera placement; the rest of the camera is shared
type view struct {
	lookFrom core.Vec3
	lookAt   core.Vec3
	vfov     float64
	aperture float64
}

// output holds the default output size and quality of a scene
type output struct {
	width       int
	aspectRatio float64
	samples     int
}

var (
	skyBackground   = integrator.NewUniformBackground(core.NewVec3(0.70, 0.80, 1.00))
	blackBackground = integrator.NewUniformBackground(core.NewVec3(0, 0, 0))

	// 16:9 at 400 pixels wide is the default for the sphere scenes
	wideImage = output{width: 400, aspectRatio: 16.0 / 9.0, samples: 100}
)

// newScene wraps the shapes in a BVH and sets up the camera
func newScene(name string, shapes []geometry.Shape, v view, background integrator.Background, out output, sampler core.Sampler) (*Scene, error) {
	world, err := geometry.NewBVHNode(shapes, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	camera, err := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      v.lookFrom,
		LookAt:        v.lookAt,
		Up:            core.NewVec3(0, 1, 0), // Standard up direction
		VFov:          v.vfov,
		AspectRatio:   out.aspectRatio,
		Aperture:      v.aperture,
		FocusDistance: 10.0,
		Time0:         0.0, // Shutter open for the whole motion interval
		Time1:         1.0,
	})
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = out.samples

	return &Scene{
		Name:       name,
		World:      world,
		Camera:     camera,
		Background: background,
		Width:      out.width,
		Height:     int(math.Round(float64(out.width) / out.aspectRatio)),
		Sampling:   sampling,
	}, nil
}
