package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetSamplingConfig() SamplingConfig
	GetBackground() integrator.Background
}

// Raytracer renders a scene by sampling every pixel in parallel
type Raytracer struct {
	scene      Scene
	sampling   SamplingConfig
	config     Config
	integrator integrator.Integrator
	pool       *WorkerPool
	logger     log.Logger
	onProgress ProgressCallback
}

// NewRaytracer creates a raytracer for scene using the scene's sampling configuration
func NewRaytracer(scene Scene, config Config, logger log.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("while creating raytracer: %w", err)
	}
	sampling := scene.GetSamplingConfig()
	if err := sampling.Validate(); err != nil {
		return nil, fmt.Errorf("while creating raytracer: %w", err)
	}

	return &Raytracer{
		scene:      scene,
		sampling:   sampling,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(scene.GetBackground()),
		pool:       NewWorkerPool(config.NumWorkers),
		logger:     logger,
	}, nil
}

// SetSamplingConfig replaces the sampling configuration taken from the scene
func (rt *Raytracer) SetSamplingConfig(sampling SamplingConfig) error {
	if err := sampling.Validate(); err != nil {
		return err
	}
	rt.sampling = sampling
	return nil
}

// GetSamplingConfig returns the sampling configuration used for the next render
func (rt *Raytracer) GetSamplingConfig() SamplingConfig {
	return rt.sampling
}

// SetProgressCallback registers a callback invoked as rows complete
func (rt *Raytracer) SetProgressCallback(callback ProgressCallback) {
	rt.onProgress = callback
}

// Render renders the scene and converts the result to 8-bit colors
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	buffer, stats, err := rt.RenderBuffer(ctx)
	if err != nil {
		return nil, stats, err
	}
	return buffer.Finalize(rt.sampling.SamplesPerPixel), stats, nil
}

// RenderBuffer renders the scene and returns the raw accumulated sums. Every pixel
// receives exactly SamplesPerPixel samples before it returns without error.
func (rt *Raytracer) RenderBuffer(ctx context.Context) (*AccumulationBuffer, RenderStats, error) {
	width, height := rt.sampling.Width, rt.sampling.Height

	buffer := NewAccumulationBuffer(width, height)
	tiles := NewTileGrid(width, height, rt.config.RowsPerTile, rt.config.Seed)
	tileRenderer := NewTileRenderer(rt.scene.GetCamera(), rt.scene.GetWorld(), rt.integrator, rt.sampling)

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.sampling.SamplesPerPixel,
		MaxDepth:        rt.sampling.MaxDepth,
		Tiles:           len(tiles),
		Workers:         rt.pool.GetNumWorkers(),
	}

	rt.logger.Infof("rendering %dx%d, %d spp, depth %d, %d tiles on %d workers",
		width, height, stats.SamplesPerPixel, stats.MaxDepth, stats.Tiles, stats.Workers)

	progress := NewProgress(height, rt.onProgress)
	start := time.Now()

	err := rt.pool.Run(ctx, tiles, func(ctx context.Context, tile *Tile) error {
		if _, err := tileRenderer.RenderTileBounds(ctx, tile.Bounds, buffer, tile.Random); err != nil {
			return err
		}
		remaining := progress.RowsDone(tile.Bounds.Dy())
		rt.logger.Debugf("tile %d done, %d rows remaining", tile.ID, remaining)
		return nil
	})

	stats.Duration = time.Since(start)
	stats.TotalSamples = buffer.TotalSamples()
	if err != nil {
		return nil, stats, fmt.Errorf("while rendering %dx%d frame: %w", width, height, err)
	}

	rt.logger.Noticef("rendered %d samples in %v", stats.TotalSamples, stats.Duration)
	return buffer, stats, nil
}
