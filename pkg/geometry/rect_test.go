package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestRects_Hit(t *testing.T) {
	tests := []struct {
		name        string
		shape       Shape
		ray         core.Ray
		expectHit   bool
		expectT     float64
		expectUV    core.Vec2
		expectFront bool
	}{
		{
			name:        "xy center",
			shape:       NewXYRect(0, 2, 0, 4, -1, nil),
			ray:         core.NewRay(core.NewVec3(1, 2, 1), core.NewVec3(0, 0, -1)),
			expectHit:   true,
			expectT:     2,
			expectUV:    core.NewVec2(0.5, 0.5),
			expectFront: true,
		},
		{
			name:        "xz corner",
			shape:       NewXZRect(0, 1, 0, 1, 3, nil),
			ray:         core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)),
			expectHit:   true,
			expectT:     3,
			expectUV:    core.NewVec2(1, 0),
			expectFront: false, // Approaches from the -Y side of a +Y rect
		},
		{
			name:      "yz outside bounds",
			shape:     NewYZRect(0, 1, 0, 1, 0, nil),
			ray:       core.NewRay(core.NewVec3(-1, 2, 0.5), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "parallel to plane",
			shape:     NewXYRect(0, 1, 0, 1, 0, nil),
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "behind origin",
			shape:     NewXYRect(0, 1, 0, 1, 0, nil),
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.shape.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectT, hit.T)
			}
			if math.Abs(hit.UV.X-tt.expectUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectUV.Y) > 1e-9 {
				t.Errorf("Expected uv %v, got %v", tt.expectUV, hit.UV)
			}
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Normal %v does not oppose the ray", hit.Normal)
			}
			if hit.FrontFace != tt.expectFront {
				t.Errorf("Expected frontFace=%t, got %t", tt.expectFront, hit.FrontFace)
			}
		})
	}
}

func TestRects_BoundingBoxPadded(t *testing.T) {
	box, ok := NewXZRect(-1, 1, -2, 2, 5, nil).BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-1, 5-rectThickness, -2), core.NewVec3(1, 5+rectThickness, 2))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3), nil)

	tests := []struct {
		name    string
		ray     core.Ray
		expectT float64
		normal  core.Vec3
	}{
		{"from +Z", core.NewRay(core.NewVec3(0.5, 1, 10), core.NewVec3(0, 0, -1)), 7, core.NewVec3(0, 0, 1)},
		{"from -X", core.NewRay(core.NewVec3(-4, 1, 1), core.NewVec3(1, 0, 0)), 4, core.NewVec3(-1, 0, 0)},
		{"from inside", core.NewRay(core.NewVec3(0.5, 1, 1), core.NewVec3(0, 1, 0)), 1, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-tt.expectT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectT, hit.T)
			}
			if !hit.Normal.Equals(tt.normal) {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
		})
	}

	bbox, _ := box.BoundingBox(0, 1)
	if bbox != core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3)) {
		t.Errorf("Unexpected bounding box %v", bbox)
	}
}

func TestBox_FrontFace(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)

	directions := []struct {
		name      string
		direction core.Vec3
	}{
		{"+X", core.NewVec3(1, 0, 0)},
		{"-X", core.NewVec3(-1, 0, 0)},
		{"+Y", core.NewVec3(0, 1, 0)},
		{"-Y", core.NewVec3(0, -1, 0)},
		{"+Z", core.NewVec3(0, 0, 1)},
		{"-Z", core.NewVec3(0, 0, -1)},
	}

	for _, d := range directions {
		t.Run("outside moving "+d.name, func(t *testing.T) {
			// Start off-center so the ray crosses exactly one face
			offset := core.NewVec3(0.3, 0.2, 0.1)
			origin := d.direction.Multiply(-5).Add(offset.Subtract(d.direction.Multiply(offset.Dot(d.direction))))
			hit, isHit := box.Hit(core.NewRay(origin, d.direction), 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if !hit.FrontFace {
				t.Error("Expected frontFace=true for a ray arriving from outside")
			}
			if !hit.Normal.Equals(d.direction.Negate()) {
				t.Errorf("Expected normal %v, got %v", d.direction.Negate(), hit.Normal)
			}
		})

		t.Run("inside moving "+d.name, func(t *testing.T) {
			hit, isHit := box.Hit(core.NewRay(core.NewVec3(0, 0, 0), d.direction), 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if hit.FrontFace {
				t.Error("Expected frontFace=false for a ray leaving the box")
			}
			if hit.Normal.Dot(d.direction) >= 0 {
				t.Errorf("Normal %v does not oppose the ray", hit.Normal)
			}
		})
	}
}

func TestBox_GlassRefractsOnEveryFace(t *testing.T) {
	// Light entering glass at 60 degrees never totally reflects
	glass := material.NewDielectric(1.5)
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), glass)
	sinA, cosA := math.Sin(math.Pi/3), math.Cos(math.Pi/3)

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"min X face", core.NewVec3(-1.5, -0.4, 0), core.NewVec3(cosA, sinA, 0)},
		{"max X face", core.NewVec3(1.5, -0.4, 0), core.NewVec3(-cosA, sinA, 0)},
		{"min Y face", core.NewVec3(-0.4, -1.5, 0), core.NewVec3(sinA, cosA, 0)},
		{"max Z face", core.NewVec3(0, -0.4, 1.5), core.NewVec3(0, sinA, -cosA)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.dir)
			hit, isHit := box.Hit(ray, 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit")
			}

			sampler := core.NewSeededSampler(9)
			entered := 0
			const trials = 1000
			for i := 0; i < trials; i++ {
				result, _ := hit.Material.Scatter(ray, hit, sampler)
				// A refracted ray continues through the face, a reflected one turns back
				if result.Scattered.Direction.Dot(hit.Normal) < 0 {
					entered++
				}
			}

			// Schlick reflectance at 60 degrees is about 9%
			if entered < 850 {
				t.Errorf("Expected most rays to refract into the glass, got %d/%d", entered, trials)
			}
		})
	}
}
