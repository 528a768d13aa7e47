package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ErrUnknownScene is returned when a scene name is not in the catalogue
var ErrUnknownScene = errors.New("unknown scene")

// Builder constructs a scene from the given options
type Builder func(opts Options) (*Scene, error)

// Info describes a catalogue entry
type Info struct {
	Name        string
	Description string
}

type entry struct {
	builder     Builder
	description string
}

var catalogue = map[string]entry{
	"random-spheres":     {NewRandomSpheresScene, "Checkered ground with hundreds of random spheres and motion blur"},
	"two-spheres":        {NewTwoSpheresScene, "Two large checkered spheres"},
	"two-perlin-spheres": {NewTwoPerlinSpheresScene, "Marble ground and sphere from Perlin turbulence"},
	"earth":              {NewEarthScene, "Image-textured globe"},
	"simple-light":       {NewSimpleLightScene, "Marble spheres lit by a rectangular area light"},
	"cornell":            {NewCornellScene, "Cornell box with two rotated blocks"},
	"cornell-smoke":      {NewCornellSmokeScene, "Cornell box with smoke-filled blocks"},
	"final":              {NewFinalScene, "Showcase of every shape, material and texture"},
}

// DefaultSceneName is the scene rendered when none is specified
const DefaultSceneName = "cornell"

// Lookup returns the builder for a named scene
func Lookup(name string) (Builder, error) {
	e, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return e.builder, nil
}

// Build constructs a named scene
func Build(name string, opts Options) (*Scene, error) {
	builder, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return builder(opts)
}

// List returns every catalogue entry sorted by name
func List() []Info {
	names := lo.Keys(catalogue)
	slices.Sort(names)

	return lo.Map(names, func(name string, _ int) Info {
		return Info{Name: name, Description: catalogue[name].description}
	})
}
