package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.HittableList // Objects in the scene
	Background     integrator.Background  // Sky returned for escaping rays
	SamplingConfig renderer.SamplingConfig
}

// newScene creates a scene whose image height follows the camera aspect ratio
func newScene(cameraConfig renderer.CameraConfig, width, samplesPerPixel, maxDepth int) *Scene {
	s := &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		World:        geometry.NewHittableList(),
		Background:   integrator.DefaultBackground(),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: samplesPerPixel,
			MaxDepth:        maxDepth,
		},
	}
	s.SetWidth(width)
	return s
}

// SetWidth changes the image width, keeping the height in step with the camera aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = max(1, int(float64(width)/s.CameraConfig.AspectRatio))
}

// Add appends shapes to the world
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		s.World.Add(shape)
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the aggregate of every object in the scene
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetSamplingConfig returns the scene's default sampling configuration
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetBackground returns the sky gradient
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// GetObjectCount returns the number of top-level objects in the world
func (s *Scene) GetObjectCount() int {
	return s.World.Len()
}
