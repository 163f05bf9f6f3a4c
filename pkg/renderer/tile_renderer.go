package renderer

import (
	"context"
	"image"
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *Camera
	world      geometry.Shape
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewTileRenderer creates a new tile renderer for the given camera, world and integrator
func NewTileRenderer(camera *Camera, world geometry.Shape, integratorInst integrator.Integrator, config SamplingConfig) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
		config:     config,
	}
}

// RenderTileBounds takes SamplesPerPixel samples for every pixel within bounds and adds
// them to buffer. It stops between rows once ctx is done and returns the samples taken.
func (tr *TileRenderer) RenderTileBounds(ctx context.Context, bounds image.Rectangle, buffer *AccumulationBuffer, random *rand.Rand) (int, error) {
	samples := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum := tr.samplePixel(x, y, random)
			buffer.AddSamples(x, y, sum, tr.config.SamplesPerPixel)
			samples += tr.config.SamplesPerPixel
		}
	}
	return samples, nil
}

// samplePixel returns the sum of SamplesPerPixel jittered samples through pixel (x, y)
func (tr *TileRenderer) samplePixel(x, y int, random *rand.Rand) core.Color {
	// Viewport t runs bottom to top while image rows run top to bottom
	j := tr.config.Height - 1 - y
	uScale := float64(max(1, tr.config.Width-1))
	vScale := float64(max(1, tr.config.Height-1))

	var sum core.Color
	for sample := 0; sample < tr.config.SamplesPerPixel; sample++ {
		s := (float64(x) + random.Float64()) / uScale
		t := (float64(j) + random.Float64()) / vScale

		ray := tr.camera.GetRay(s, t, random)
		sum.AddAssign(tr.integrator.RayColor(ray, tr.world, tr.config.MaxDepth, random))
	}
	return sum
}
