package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background returns the radiance carried by rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// UniformBackground is the same radiance in every direction.
// Black turns the scene's lights into the only light source.
type UniformBackground struct {
	Radiance core.Vec3
}

// NewUniformBackground creates a constant background
func NewUniformBackground(radiance core.Vec3) *UniformBackground {
	return &UniformBackground{Radiance: radiance}
}

// Color returns the constant radiance
func (b *UniformBackground) Color(ray core.Ray) core.Vec3 {
	return b.Radiance
}

// GradientBackground blends between a bottom and a top color by ray elevation
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a sky-style vertical gradient
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// Color returns a gradient color based on ray direction
func (b *GradientBackground) Color(ray core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
