package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrNoBoundingBox is returned when a shape handed to the BVH reports no bounding box
	ErrNoBoundingBox = errors.New("shape has no bounding box")
	// ErrEmptyBVH is returned when a BVH is built from no shapes
	ErrEmptyBVH = errors.New("cannot build BVH from an empty shape list")
)

// BVHNode is a node in the Bounding Volume Hierarchy.
// Both children are always set; a node over a single shape holds it on both sides.
type BVHNode struct {
	Left   Shape
	Right  Shape
	box    core.AABB
	single bool // Left and Right alias one shape
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	TotalNodes int // Interior BVH nodes
	LeafNodes  int // Child slots holding a non-BVH shape
	MaxDepth   int
}

// NewBVHNode builds a hierarchy over the shapes for the shutter interval [time0, time1].
// The split axis at each level is drawn from the sampler. The input slice is not modified.
func NewBVHNode(shapes []Shape, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	// Cache every box once up front; sorting compares them many times
	items := make([]bvhItem, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("bvh shape %d: %w", i, ErrNoBoundingBox)
		}
		items[i] = bvhItem{shape: shape, box: box}
	}

	return buildBVH(items, time0, time1, sampler), nil
}

// bvhItem pairs a shape with its bounding box over the build interval
type bvhItem struct {
	shape Shape
	box   core.AABB
}

// buildBVH recursively splits the items at the median of the box minimum on a random axis
func buildBVH(items []bvhItem, time0, time1 float64, sampler core.Sampler) *BVHNode {
	axis := core.RandomInt(sampler, 0, 2)
	less := func(a, b bvhItem) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	node := &BVHNode{}
	var leftBox, rightBox core.AABB

	switch len(items) {
	case 1:
		node.Left, node.Right = items[0].shape, items[0].shape
		node.single = true
		leftBox, rightBox = items[0].box, items[0].box
	case 2:
		first, second := items[0], items[1]
		if !less(first, second) {
			first, second = second, first
		}
		node.Left, node.Right = first.shape, second.shape
		leftBox, rightBox = first.box, second.box
	default:
		sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
		mid := len(items) / 2
		left := buildBVH(items[:mid], time0, time1, sampler)
		right := buildBVH(items[mid:], time0, time1, sampler)
		node.Left, node.Right = left, right
		leftBox, rightBox = left.box, right.box
	}

	node.box = core.SurroundingBox(leftBox, rightBox)
	return node
}

// Hit tests the node box, then both children, keeping the closer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		// Only a strictly closer hit on the right can win
		if rightHit, hitRight := n.Right.Hit(ray, tMin, leftHit.T, sampler); hitRight {
			return rightHit, true
		}
		return leftHit, true
	}

	return n.Right.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box cached at construction
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.box, true
}

// Stats walks the hierarchy and reports its size and depth
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Shape{n.Left, n.Right}
	if n.single {
		children = children[:1]
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.LeafNodes++
		}
	}
}
