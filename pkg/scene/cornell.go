package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box camera: outside the open side of the 555-unit box, looking in
var cornellView = view{
	lookFrom: core.NewVec3(278, 278, -800),
	lookAt:   core.NewVec3(278, 278, 0),
	vfov:     40.0,
}

var squareImage = output{width: 600, aspectRatio: 1.0, samples: 200}

// NewSimpleLightScene creates the marble spheres lit only by a rectangular emitter
func NewSimpleLightScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	shapes := newPerlinSpheres(sampler)
	shapes = append(shapes, geometry.NewXYRect(3, 5, 1, 3, -2, material.NewDiffuseLight(core.NewVec3(4, 4, 4))))

	v := view{
		lookFrom: core.NewVec3(26, 3, 6),
		lookAt:   core.NewVec3(0, 2, 0),
		vfov:     20.0,
	}
	out := wideImage
	out.samples = 400 // Small light source needs more samples to converge

	return newScene("simple-light", shapes, v, blackBackground, out, sampler)
}

// newCornellWalls creates the five walls of the box plus a ceiling light of the given extent
func newCornellWalls(light material.Material, x0, x1, z0, z1 float64) []geometry.Shape {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Cornell box dimensions (standard 555x555x555 units)
	const boxSize = 555.0

	return []geometry.Shape{
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // Left wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // Right wall
		geometry.NewXZRect(x0, x1, z0, z1, boxSize-1, light),       // Light just below the ceiling
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // Floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // Ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // Back wall
	}
}

// newCornellBlocks creates the tall and short rotated blocks standing in the box
func newCornellBlocks() (tall, short geometry.Shape) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// NewCornellScene creates the classic Cornell box with two rotated blocks
func NewCornellScene(opts Options) (*Scene, error) {
	shapes := newCornellWalls(material.NewDiffuseLight(core.NewVec3(15, 15, 15)), 213, 343, 227, 332)
	tall, short := newCornellBlocks()
	shapes = append(shapes, tall, short)

	return newScene("cornell", shapes, cornellView, blackBackground, squareImage, core.NewSeededSampler(opts.Seed))
}

// NewCornellSmokeScene fills the Cornell blocks with dark and light smoke under a larger, dimmer light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	shapes := newCornellWalls(material.NewDiffuseLight(core.NewVec3(7, 7, 7)), 113, 443, 127, 432)
	tall, short := newCornellBlocks()
	shapes = append(shapes,
		geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return newScene("cornell-smoke", shapes, cornellView, blackBackground, squareImage, core.NewSeededSampler(opts.Seed))
}
