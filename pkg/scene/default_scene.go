package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a diffuse sphere resting on a large ground sphere
func NewDefaultScene() *Scene {
	s := newScene(renderer.DefaultCameraConfig(), 400, 100, 50)

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return s
}

// addMaterialSpheres adds the ground, a diffuse center sphere, a hollow glass sphere
// and a metal sphere in a row along x
func addMaterialSpheres(s *Scene) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normals inward, making the glass sphere hollow
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal),
	)
}

// NewMaterialsScene creates the three-material showcase viewed from the origin
func NewMaterialsScene() *Scene {
	s := newScene(renderer.DefaultCameraConfig(), 400, 100, 50)
	addMaterialSpheres(s)
	return s
}

// NewDefocusScene shows the material spheres through a positioned thin-lens camera
func NewDefocusScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(3, 3, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      2.0,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	s := newScene(cameraConfig, 400, 100, 50)
	addMaterialSpheres(s)
	return s
}
