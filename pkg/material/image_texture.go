package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D raster of 8-bit RGB triples
type ImageTexture struct {
	Width  int
	Height int
	Pixels []byte // Row-major: Pixels[3*(y*Width + x)], top row first
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []byte) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	// Debugging cyan when there is no data
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < 3*t.Width*t.Height {
		return core.NewVec3(0, 1, 1)
	}

	// Clamp UV coordinates to [0, 1]
	u := clamp01(uv.X)
	v := 1.0 - clamp01(uv.Y) // Flip V to image coordinates

	// Convert to pixel coordinates
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Clamp to image bounds
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	i := 3 * (y*t.Width + x)
	return core.NewVec3(
		float64(t.Pixels[i])/255.0,
		float64(t.Pixels[i+1])/255.0,
		float64(t.Pixels[i+2])/255.0,
	)
}

// clamp01 also maps NaN to 0
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
