package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// unboundedShape is a test shape that reports no bounding box
type unboundedShape struct{}

func (unboundedShape) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (unboundedShape) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

// randomScene builds a mix of spheres, rectangles and boxes
func randomScene(sampler core.Sampler, count int) []Shape {
	shapes := make([]Shape, 0, count)
	for i := 0; i < count; i++ {
		center := core.RandomVec3(sampler, -20, 20)
		switch i % 4 {
		case 0, 1:
			shapes = append(shapes, NewSphere(center, core.RandomRange(sampler, 0.2, 2), nil))
		case 2:
			shapes = append(shapes, NewXZRect(center.X, center.X+2, center.Z, center.Z+1, center.Y, nil))
		default:
			size := core.RandomVec3(sampler, 0.2, 3)
			shapes = append(shapes, NewRotateY(NewBox(center, center.Add(size), nil), core.RandomRange(sampler, 0, 360)))
		}
	}
	return shapes
}

func TestBVH_MatchesLinearSearch(t *testing.T) {
	sampler := core.NewSeededSampler(1234)

	for _, count := range []int{1, 2, 3, 7, 50, 300} {
		shapes := randomScene(sampler, count)
		list := NewShapeList(shapes...)

		bvh, err := NewBVHNode(shapes, 0, 1, sampler)
		if err != nil {
			t.Fatalf("Failed to build BVH: %v", err)
		}

		for i := 0; i < 2000; i++ {
			ray := core.NewRay(core.RandomVec3(sampler, -30, 30), core.RandomVec3(sampler, -1, 1))

			listHit, listOK := list.Hit(ray, 0.001, math.Inf(1), sampler)
			bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1), sampler)

			if listOK != bvhOK {
				t.Fatalf("count=%d ray %d: list hit=%t, bvh hit=%t", count, i, listOK, bvhOK)
			}
			if listOK && listHit.T != bvhHit.T {
				t.Fatalf("count=%d ray %d: list t=%f, bvh t=%f", count, i, listHit.T, bvhHit.T)
			}
		}
	}
}

func TestBVH_BoxEnclosesChildren(t *testing.T) {
	sampler := core.NewSeededSampler(5)
	shapes := randomScene(sampler, 40)

	bvh, err := NewBVHNode(shapes, 0, 1, sampler)
	if err != nil {
		t.Fatalf("Failed to build BVH: %v", err)
	}

	var check func(node *BVHNode)
	check = func(node *BVHNode) {
		nodeBox, _ := node.BoundingBox(0, 1)
		for _, child := range []Shape{node.Left, node.Right} {
			childBox, ok := child.BoundingBox(0, 1)
			if !ok {
				t.Fatal("Child without bounding box")
			}
			if !nodeBox.Contains(childBox) {
				t.Fatalf("Node box %v does not contain child box %v", nodeBox, childBox)
			}
			if inner, ok := child.(*BVHNode); ok {
				check(inner)
			}
		}
	}
	check(bvh)
}

func TestBVH_Errors(t *testing.T) {
	if _, err := NewBVHNode(nil, 0, 1, core.NewSeededSampler(1)); !errors.Is(err, ErrEmptyBVH) {
		t.Errorf("Expected ErrEmptyBVH, got %v", err)
	}

	shapes := []Shape{NewSphere(core.NewVec3(0, 0, 0), 1, nil), unboundedShape{}}
	if _, err := NewBVHNode(shapes, 0, 1, core.NewSeededSampler(1)); !errors.Is(err, ErrNoBoundingBox) {
		t.Errorf("Expected ErrNoBoundingBox, got %v", err)
	}

	// An empty list nested in the input has no box either
	shapes = []Shape{NewShapeList()}
	if _, err := NewBVHNode(shapes, 0, 1, core.NewSeededSampler(1)); !errors.Is(err, ErrNoBoundingBox) {
		t.Errorf("Expected ErrNoBoundingBox for empty list, got %v", err)
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	sampler := core.NewSeededSampler(77)
	shapes := randomScene(sampler, 20)
	original := append([]Shape(nil), shapes...)

	if _, err := NewBVHNode(shapes, 0, 1, sampler); err != nil {
		t.Fatalf("Failed to build BVH: %v", err)
	}

	for i := range shapes {
		if shapes[i] != original[i] {
			t.Fatalf("Input slice reordered at index %d", i)
		}
	}
}

func TestBVH_Stats(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		expectedNodes int
		expectedLeafs int
	}{
		{"single shape", 1, 1, 1},
		{"two shapes", 2, 1, 2},
		{"four shapes", 4, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := core.NewSeededSampler(3)
			shapes := make([]Shape, tt.count)
			for i := range shapes {
				shapes[i] = NewSphere(core.NewVec3(float64(i)*3, 0, 0), 1, nil)
			}

			bvh, err := NewBVHNode(shapes, 0, 1, sampler)
			if err != nil {
				t.Fatalf("Failed to build BVH: %v", err)
			}

			stats := bvh.Stats()
			if stats.TotalNodes != tt.expectedNodes {
				t.Errorf("Expected %d nodes, got %d", tt.expectedNodes, stats.TotalNodes)
			}
			if stats.LeafNodes != tt.expectedLeafs {
				t.Errorf("Expected %d leaves, got %d", tt.expectedLeafs, stats.LeafNodes)
			}
		})
	}
}
