package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// The sphere scenes share a camera looking at the origin from a distance
var farView = view{
	lookFrom: core.NewVec3(13, 2, 3),
	lookAt:   core.NewVec3(0, 0, 0),
	vfov:     20.0,
}

func newGroundChecker() *material.CheckerTexture {
	return material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
}

// NewRandomSpheresScene creates a checkered ground covered in small random spheres
// with three large feature spheres. Diffuse spheres bounce during the shutter interval.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, material.NewTexturedLambertian(newGroundChecker())),
	}
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				shapes = append(shapes, geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	v := farView
	v.aperture = 0.1
	return newScene("random-spheres", shapes, v, skyBackground, wideImage, sampler)
}

// NewTwoSpheresScene creates two large checkered spheres touching at the origin
func NewTwoSpheresScene(opts Options) (*Scene, error) {
	checker := material.NewTexturedLambertian(newGroundChecker())

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	}

	return newScene("two-spheres", shapes, farView, skyBackground, wideImage, core.NewSeededSampler(opts.Seed))
}

// newPerlinSpheres creates a marble ground and a marble sphere sitting on it
func newPerlinSpheres(sampler core.Sampler) []geometry.Shape {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(noise.NewPerlin(sampler), 4.0))

	return []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewTwoPerlinSpheresScene creates a marble-textured ground and sphere
func NewTwoPerlinSpheresScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)
	return newScene("two-perlin-spheres", newPerlinSpheres(sampler), farView, skyBackground, wideImage, sampler)
}

// loadEarthTexture decodes the earth image named by the options
func loadEarthTexture(opts Options) (*material.ImageTexture, error) {
	path := opts.TexturePath
	if path == "" {
		path = DefaultTexturePath
	}

	texture, err := loaders.LoadImageTexture(path)
	if err != nil {
		return nil, fmt.Errorf("earth texture: %w", err)
	}
	return texture, nil
}

// NewEarthScene creates a single globe wrapped in an image texture
func NewEarthScene(opts Options) (*Scene, error) {
	texture, err := loadEarthTexture(opts)
	if err != nil {
		return nil, err
	}

	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	}

	return newScene("earth", shapes, farView, skyBackground, wideImage, core.NewSeededSampler(opts.Seed))
}
