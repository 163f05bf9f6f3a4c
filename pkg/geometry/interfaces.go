package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit must only report intersections with tMin <= t <= tMax; nearest-hit
// aggregation in HittableList depends on it.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
