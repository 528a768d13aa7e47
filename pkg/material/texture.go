package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// defaultCheckerScale is the spatial frequency of the checker pattern
const defaultCheckerScale = 10.0

// CheckerTexture alternates between two textures in a 3D sine pattern
type CheckerTexture struct {
	Even  Texture
	Odd   Texture
	Scale float64
}

// NewCheckerTexture creates a checker from two solid colors
func NewCheckerTexture(even, odd core.Vec3) *CheckerTexture {
	return NewScaledCheckerTexture(NewSolidColor(even), NewSolidColor(odd), defaultCheckerScale)
}

// NewScaledCheckerTexture creates a checker from two textures with a custom frequency
func NewScaledCheckerTexture(even, odd Texture, scale float64) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd, Scale: scale}
}

// Evaluate picks the odd texture where the product of sines is negative
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	Noise *noise.Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture over the given noise field
func NewNoiseTexture(perlin *noise.Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: perlin, Scale: scale}
}

// Evaluate returns a grey level phase-shifted along z by turbulence
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	turb := n.Noise.Turbulence(point, noise.DefaultTurbulenceDepth)
	level := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*turb))
	return core.NewVec3(level, level, level)
}
