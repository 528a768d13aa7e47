package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrDegenerateCamera is returned when a camera configuration cannot form a view basis
var ErrDegenerateCamera = errors.New("degenerate camera")

// CameraConfig describes a thin-lens camera with a shutter interval
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Approximate up direction
	VFov          float64   // Vertical field of view in degrees, in (0, 180)
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter (0 = pinhole)
	FocusDistance float64   // Distance to the plane in perfect focus
	Time0, Time1  float64   // Shutter open/close times
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera from the configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, fmt.Errorf("%w: vertical field of view %g outside (0, 180)", ErrDegenerateCamera, config.VFov)
	}
	if !(config.AspectRatio > 0) {
		return nil, fmt.Errorf("%w: aspect ratio %g must be positive", ErrDegenerateCamera, config.AspectRatio)
	}
	if !(config.FocusDistance > 0) {
		return nil, fmt.Errorf("%w: focus distance %g must be positive", ErrDegenerateCamera, config.FocusDistance)
	}

	look := config.LookFrom.Subtract(config.LookAt)
	if look.LengthSquared() == 0 {
		return nil, fmt.Errorf("%w: look-from equals look-at", ErrDegenerateCamera)
	}
	w := look.Normalize()

	side := config.Up.Cross(w)
	if side.Length() < 1e-12 {
		return nil, fmt.Errorf("%w: up vector is parallel to the view direction", ErrDegenerateCamera)
	}
	u := side.Normalize()
	v := w.Cross(u)

	// Viewport dimensions at the focus plane
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	origin := config.LookFrom
	horizontal := u.Multiply(config.FocusDistance * viewportWidth)
	vertical := v.Multiply(config.FocusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower-left corner of the image plane.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	// Sample the lens for depth of field
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0
	if c.time1 != c.time0 {
		time = core.RandomRange(sampler, c.time0, c.time1)
	}

	return core.NewRayAt(origin, direction, time)
}
