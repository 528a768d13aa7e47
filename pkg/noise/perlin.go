package noise

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// pointCount is the size of the gradient and permutation tables
const pointCount = 256

// DefaultTurbulenceDepth is the number of octaves summed by textures that use turbulence
const DefaultTurbulenceDepth = 7

// Perlin is a gradient noise field built on a lattice of random unit vectors.
// It is immutable after construction and safe for concurrent use.
type Perlin struct {
	gradients [pointCount]core.Vec3
	permX     [pointCount]int
	permY     [pointCount]int
	permZ     [pointCount]int
}

// NewPerlin creates a noise field whose tables are drawn from the sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.RandomVec3(sampler, -1, 1).Normalize()
	}
	p.permX = generatePermutation(sampler)
	p.permY = generatePermutation(sampler)
	p.permZ = generatePermutation(sampler)
	return p
}

// generatePermutation shuffles the identity table with Fisher-Yates, walking down from the top
func generatePermutation(sampler core.Sampler) [pointCount]int {
	var perm [pointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := pointCount - 1; i > 0; i-- {
		target := core.RandomInt(sampler, 0, i)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns the smoothed gradient noise at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := point.X - fx
	v := point.Y - fy
	w := point.Z - fz
	i, j, k := int(fx), int(fy), int(fz)

	// Gradients at the eight corners of the lattice cell
	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return interpolate(c, u, v, w)
}

// interpolate blends the corner gradient contributions with Hermite smoothing
func interpolate(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise with halving weight and doubling frequency.
// The result is non-negative.
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}
