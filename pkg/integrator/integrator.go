package integrator

import (
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most
	// depth bounces through world.
	RayColor(ray core.Ray, world geometry.Shape, depth int, random *rand.Rand) core.Color
}
