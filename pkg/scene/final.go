package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// NewFinalScene creates the showcase scene that exercises every shape, material and texture:
// a field of random-height boxes, motion blur, glass, fog, a textured globe,
// marble and a rotated cluster of spheres.
func NewFinalScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	earth, err := loadEarthTexture(opts)
	if err != nil {
		return nil, err
	}

	// Ground made of boxes with random heights
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.54))
	const boxesPerSide = 20
	var boxes []geometry.Shape
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBVH, err := geometry.NewBVHNode(boxes, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("final ground: %w", err)
	}

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))

	// Glass sphere filled with blue fog
	fogBoundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	// Thin mist over the whole scene
	mistBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))

	// Cluster of small spheres, rotated and moved into view
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Shape, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	clusterBVH, err := geometry.NewBVHNode(cluster, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("final sphere cluster: %w", err)
	}

	shapes := []geometry.Shape{
		groundBVH,
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
		geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
		fogBoundary,
		geometry.NewConstantMediumColor(fogBoundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)),
		geometry.NewConstantMediumColor(mistBoundary, 0.0001, core.NewVec3(1, 1, 1)),
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(noise.NewPerlin(sampler), 0.1))),
		geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)),
	}

	v := view{
		lookFrom: core.NewVec3(478, 278, -600),
		lookAt:   core.NewVec3(278, 278, 0),
		vfov:     40.0,
	}
	out := output{width: 800, aspectRatio: 1.0, samples: 400}

	return newScene("final", shapes, v, blackBackground, out, sampler)
}
