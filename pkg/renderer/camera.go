package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// CameraConfig contains the parameters for a positionable thin-lens camera
type CameraConfig struct {
	Center        core.Point // Camera position (look-from)
	LookAt        core.Point // Point the camera is looking at
	Up            core.Vec3  // Up direction hint
	AspectRatio   float64    // Width / height
	VFov          float64    // Vertical field of view in degrees
	Aperture      float64    // Lens diameter; 0 is a pinhole camera
	FocusDistance float64    // Distance to the plane in focus; <= 0 uses |LookAt - Center|
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	config          CameraConfig
	origin          core.Point
	lowerLeftCorner core.Point
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis: right, true up, backward
	lensRadius      float64
}

// NewCamera creates a camera with the given configuration
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2) * focusDistance
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		config:          config,
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for viewport coordinates (s, t). (0, 0) is the lower
// left corner of the viewport and (1, 1) the upper right.
//
// Pixels are mapped as (x + jitter) / (width - 1), so samples in the last
// column or row reach up to width / (width - 1) and land slightly outside the
// viewport. Values outside [0, 1] are extrapolated linearly.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	origin := c.origin

	// Jitter the origin across the lens disk for depth of field
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		origin = origin.Add(offset)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// GetCameraForward returns the unit direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
