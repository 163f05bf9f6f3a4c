package renderer

import (
	"sync"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// PixelStats tracks the running sum for a single pixel
type PixelStats struct {
	ColorAccum  core.Color // Sum of all radiance samples
	SampleCount int        // Number of samples taken
}

// AccumulationBuffer holds one PixelStats per pixel, shared by all workers.
// Every read-modify-write of a pixel happens under the lock of its row.
type AccumulationBuffer struct {
	width, height int
	rows          [][]PixelStats
	rowLocks      []sync.Mutex
}

// NewAccumulationBuffer creates a zeroed buffer for a width x height image
func NewAccumulationBuffer(width, height int) *AccumulationBuffer {
	rows := make([][]PixelStats, height)
	for y := range rows {
		rows[y] = make([]PixelStats, width)
	}
	return &AccumulationBuffer{
		width:    width,
		height:   height,
		rows:     rows,
		rowLocks: make([]sync.Mutex, height),
	}
}

// Width returns the buffer width in pixels
func (b *AccumulationBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels
func (b *AccumulationBuffer) Height() int { return b.height }

// AddSamples adds a locally accumulated sum of n samples to pixel (x, y)
func (b *AccumulationBuffer) AddSamples(x, y int, sum core.Color, n int) {
	b.rowLocks[y].Lock()
	defer b.rowLocks[y].Unlock()

	ps := &b.rows[y][x]
	ps.ColorAccum.AddAssign(sum)
	ps.SampleCount += n
}

// Pixel returns a copy of the statistics for pixel (x, y)
func (b *AccumulationBuffer) Pixel(x, y int) PixelStats {
	b.rowLocks[y].Lock()
	defer b.rowLocks[y].Unlock()
	return b.rows[y][x]
}

// TotalSamples returns the number of samples recorded across all pixels
func (b *AccumulationBuffer) TotalSamples() int {
	total := 0
	for y := range b.rows {
		b.rowLocks[y].Lock()
		for x := range b.rows[y] {
			total += b.rows[y][x].SampleCount
		}
		b.rowLocks[y].Unlock()
	}
	return total
}

// Finalize converts the accumulated sums into 8-bit colors, dividing by samplesPerPixel.
// It must only be called after every writer has finished.
func (b *AccumulationBuffer) Finalize(samplesPerPixel int) *Frame {
	frame := NewFrame(b.width, b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			frame.Set(x, y, ToRGB(b.rows[y][x].ColorAccum, samplesPerPixel))
		}
	}
	return frame
}
