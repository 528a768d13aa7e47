package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DefaultTMin offsets secondary rays from the surface they leave to avoid self-intersection
const DefaultTMin = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	background Background
	tMin       float64
}

// NewPathTracingIntegrator creates a new path tracing integrator lit by the given background
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		background: background,
		tMin:       DefaultTMin,
	}
}

// RayColor estimates the radiance arriving along ray, following at most depth bounces
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, pt.tMin, math.Inf(1), sampler)
	if !isHit {
		return pt.background.Color(ray)
	}

	// Start with emitted light from the hit material
	colorEmitted := material.Emitted(hit.Material, hit.UV, hit.Point)

	// Try to scatter the ray
	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	incoming := pt.RayColor(scatter.Scattered, world, depth-1, sampler)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
