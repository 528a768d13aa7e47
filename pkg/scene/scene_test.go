package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// writeTestTexture saves a small blue-and-green PNG to use as the earth texture
func writeTestTexture(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 0, G: uint8(60 * x), B: 200, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "earth.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create texture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode texture: %v", err)
	}
	return path
}

func testOptions(t *testing.T) Options {
	opts := DefaultOptions()
	opts.TexturePath = writeTestTexture(t)
	return opts
}

func TestCatalogue_AllScenesBuild(t *testing.T) {
	opts := testOptions(t)

	for _, info := range List() {
		t.Run(info.Name, func(t *testing.T) {
			s, err := Build(info.Name, opts)
			if err != nil {
				t.Fatalf("Failed to build scene: %v", err)
			}

			if s.Name != info.Name {
				t.Errorf("Expected name %q, got %q", info.Name, s.Name)
			}
			if s.World == nil || s.Camera == nil || s.Background == nil {
				t.Fatal("Scene is missing world, camera or background")
			}
			if s.Width <= 0 || s.Height <= 0 {
				t.Errorf("Invalid default size %dx%d", s.Width, s.Height)
			}
			if s.Sampling.SamplesPerPixel <= 0 || s.Sampling.MaxDepth <= 0 {
				t.Errorf("Invalid sampling config %+v", s.Sampling)
			}
			if _, ok := s.World.BoundingBox(0, 1); !ok {
				t.Error("Expected the scene to be bounded")
			}

			// The view through the center of the image must see something
			sampler := core.NewSeededSampler(1)
			ray := s.Camera.GetRay(0.5, 0.5, sampler)
			if _, hit := s.World.Hit(ray, 0.001, math.Inf(1), sampler); !hit {
				t.Error("Expected the center ray to hit the scene")
			}
		})
	}
}

func TestCatalogue_Defaults(t *testing.T) {
	opts := testOptions(t)

	tests := []struct {
		name    string
		width   int
		height  int
		samples int
	}{
		{"random-spheres", 400, 225, 100},
		{"two-spheres", 400, 225, 100},
		{"simple-light", 400, 225, 400},
		{"cornell", 600, 600, 200},
		{"cornell-smoke", 600, 600, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(tt.name, opts)
			if err != nil {
				t.Fatalf("Failed to build scene: %v", err)
			}
			if s.Width != tt.width || s.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, s.Width, s.Height)
			}
			if s.Sampling.SamplesPerPixel != tt.samples {
				t.Errorf("Expected %d samples, got %d", tt.samples, s.Sampling.SamplesPerPixel)
			}
		})
	}
}

func TestLookup_UnknownScene(t *testing.T) {
	if _, err := Lookup("no-such-scene"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if _, err := Build("", DefaultOptions()); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene for empty name, got %v", err)
	}
}

func TestList_SortedAndComplete(t *testing.T) {
	infos := List()
	if len(infos) != 8 {
		t.Fatalf("Expected 8 scenes, got %d", len(infos))
	}

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
		if info.Description == "" {
			t.Errorf("Scene %q has no description", info.Name)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}
	if !slices.Contains(names, DefaultSceneName) {
		t.Errorf("Default scene %q is not in the catalogue", DefaultSceneName)
	}
}

func TestEarthScene_MissingTexture(t *testing.T) {
	opts := DefaultOptions()
	opts.TexturePath = filepath.Join(t.TempDir(), "missing.jpg")

	for _, name := range []string{"earth", "final"} {
		t.Run(name, func(t *testing.T) {
			if _, err := Build(name, opts); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Expected a not-exist error, got %v", err)
			}
		})
	}
}

func TestRandomSpheresScene_DeterministicForSeed(t *testing.T) {
	opts := DefaultOptions()

	countHits := func(s *Scene) int {
		sampler := core.NewSeededSampler(3)
		hits := 0
		for i := 0; i < 200; i++ {
			// Horizontal rays through the sphere field at sphere height
			origin := core.NewVec3(-12, 0.2, -11+float64(i)*0.11)
			ray := core.NewRayAt(origin, core.NewVec3(1, 0, 0), 0)
			if rec, hit := s.World.Hit(ray, 0.001, math.Inf(1), sampler); hit && rec.T < 24 {
				hits++
			}
		}
		return hits
	}

	a, err := NewRandomSpheresScene(opts)
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	b, err := NewRandomSpheresScene(opts)
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}

	if countHits(a) != countHits(b) {
		t.Error("Expected identical scenes for the same seed")
	}
	if _, ok := a.World.(*geometry.BVHNode); !ok {
		t.Errorf("Expected a BVH root, got %T", a.World)
	}
}

func TestCornellScene_Renders(t *testing.T) {
	s, err := NewCornellScene(DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}

	sampling := renderer.SamplingConfig{SamplesPerPixel: 4, MaxDepth: 5}
	config := renderer.RenderConfig{TileSize: 8, NumWorkers: 2, Seed: 1}
	raytracer, err := renderer.NewRaytracer(s, 16, 16, sampling, config, silentLogger{})
	if err != nil {
		t.Fatalf("Failed to create raytracer: %v", err)
	}

	img, stats := raytracer.Render()
	if stats.TotalPixels != 256 {
		t.Errorf("Expected 256 pixels, got %d", stats.TotalPixels)
	}
	if lum := renderer.CalculateAverageLuminance(img); lum <= 0 {
		t.Errorf("Expected a lit Cornell box, got average luminance %f", lum)
	}
}

type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}
