package renderer

import (
	"errors"
	"fmt"
)

// SamplingConfig contains the per-frame sampling parameters
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate reports the first invalid field, if any
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Config contains render-time parameters that do not change the image
type Config struct {
	NumWorkers  int   // Number of parallel workers (0 = auto-detect CPU count)
	RowsPerTile int   // Image rows per unit of work
	Seed        int64 // Base seed; tile N uses Seed+N
}

// DefaultConfig returns the default render configuration
func DefaultConfig() Config {
	return Config{
		NumWorkers:  0,
		RowsPerTile: 1,
		Seed:        42,
	}
}

var errRowsPerTile = errors.New("rows per tile must be positive")

// Validate reports whether the configuration can be used to render
func (c Config) Validate() error {
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	if c.RowsPerTile <= 0 {
		return errRowsPerTile
	}
	return nil
}
