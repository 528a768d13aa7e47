package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the closest intersection with t in the open interval (tMin, tMax).
	// The sampler is only drawn from by shapes with stochastic surfaces (participating media).
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the shape over the shutter interval,
	// or false if the shape is unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
