package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned box made up of 6 rectangles
type Box struct {
	Min, Max core.Vec3
	faces    *ShapeList
}

// NewBox creates a box spanning the corners p0 and p1 (p0 <= p1 componentwise).
// Every face normal points out of the box.
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	front := NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material)
	back := NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)
	top := NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material)
	bottom := NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material)
	right := NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material)
	left := NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)

	// Faces on the p0 side face the negative axis
	back.flip = true
	bottom.flip = true
	left.flip = true

	faces := NewShapeList(front, back, top, bottom, right, left)
	return &Box{Min: p0, Max: p1, faces: faces}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
