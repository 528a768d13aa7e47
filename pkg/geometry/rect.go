package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectThickness pads the degenerate axis of a rectangle's bounding box
const rectThickness = 0.0001

// axisRect is a rectangle lying in the plane where axis k equals K,
// spanning [A0, A1] on axis a and [B0, B1] on axis b
type axisRect struct {
	A0, A1, B0, B1 float64
	K              float64
	Material       material.Material
	a, b, k        int  // Axis indices (0=X, 1=Y, 2=Z)
	flip           bool // Outward normal points along -k instead of +k
}

// Hit intersects the ray with the plane, then checks the rectangle bounds
func (r *axisRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	t := (r.K - ray.Origin.Axis(r.k)) / ray.Direction.Axis(r.k)
	// Parallel rays give ±Inf or NaN and fail here
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(r.a) + t*ray.Direction.Axis(r.a)
	b := ray.Origin.Axis(r.b) + t*ray.Direction.Axis(r.b)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	outwardNormal := axisVector(r.k)
	if r.flip {
		outwardNormal = outwardNormal.Negate()
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the rectangle's extent, padded on the fixed axis
func (r *axisRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	var lo, hi [3]float64
	lo[r.a], hi[r.a] = r.A0, r.A1
	lo[r.b], hi[r.b] = r.B0, r.B1
	lo[r.k], hi[r.k] = r.K-rectThickness, r.K+rectThickness
	return core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2])), true
}

// axisVector returns the unit vector along the given axis
func axisVector(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// XYRect is a rectangle in the plane z = k with outward normal +Z
type XYRect struct {
	axisRect
}

// NewXYRect creates a rectangle spanning [x0, x1] x [y0, y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{axisRect{A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material, a: 0, b: 1, k: 2}}
}

// XZRect is a rectangle in the plane y = k with outward normal +Y
type XZRect struct {
	axisRect
}

// NewXZRect creates a rectangle spanning [x0, x1] x [z0, z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{axisRect{A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material, a: 0, b: 2, k: 1}}
}

// YZRect is a rectangle in the plane x = k with outward normal +X
type YZRect struct {
	axisRect
}

// NewYZRect creates a rectangle spanning [y0, y1] x [z0, z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{axisRect{A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material, a: 1, b: 2, k: 0}}
}
