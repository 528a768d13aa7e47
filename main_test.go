package main

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/scene"
)

type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		{"cornell scene", "cornell", false},
		{"cornell smoke scene", "cornell-smoke", false},
		{"two spheres scene", "two-spheres", false},
		{"random spheres scene", "random-spheres", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(config{sceneName: tt.sceneName, seed: 42})

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for '%s', got %v", tt.sceneName, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for '%s', got %v", tt.sceneName, s.Name)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneName, err)
			}
			if s.Width <= 0 || s.Height <= 0 {
				t.Errorf("Scene size should be positive, got %dx%d", s.Width, s.Height)
			}
		})
	}
}

func TestImageSize(t *testing.T) {
	s := &scene.Scene{Width: 400, Height: 225}

	tests := []struct {
		name           string
		width          int
		expectedWidth  int
		expectedHeight int
	}{
		{"scene default", 0, 400, 225},
		{"negative keeps default", -5, 400, 225},
		{"override keeps aspect", 800, 800, 450},
		{"tiny width", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := imageSize(s, tt.width)
			if w != tt.expectedWidth || h != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, w, h)
			}
		})
	}
}

func TestSamplingConfigOverrides(t *testing.T) {
	s, err := createScene(config{sceneName: "cornell", seed: 1})
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}

	if got := samplingConfig(s, config{}); got != s.Sampling {
		t.Errorf("Expected scene defaults %+v, got %+v", s.Sampling, got)
	}

	got := samplingConfig(s, config{samples: 7, depth: 3})
	if got.SamplesPerPixel != 7 || got.MaxDepth != 3 {
		t.Errorf("Expected 7 samples and depth 3, got %+v", got)
	}
}

func TestCreateOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	got := createOutputPath("cornell", now)
	expected := filepath.Join("output", "cornell", "render_20240309_140506.png")

	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestRun_WritesPNG(t *testing.T) {
	output := filepath.Join(t.TempDir(), "nested", "render.png")
	cfg := config{
		sceneName: "two-spheres",
		width:     16,
		samples:   2,
		depth:     3,
		workers:   2,
		seed:      42,
		output:    output,
	}

	if err := run(cfg, silentLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 16, 9) {
		t.Errorf("Expected 16x9 image, got %v", img.Bounds())
	}
}

func TestRun_UnknownScene(t *testing.T) {
	err := run(config{sceneName: "nonexistent"}, silentLogger{})
	if err == nil || !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("Expected error naming the scene, got %v", err)
	}
}
