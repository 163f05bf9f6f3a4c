package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// RGB is a finished 8-bit pixel
type RGB struct {
	R, G, B uint8
}

// Frame is a finished image stored row-major with row 0 at the top
type Frame struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// At returns the pixel at column x, row y
func (f *Frame) At(x, y int) RGB {
	return f.Pixels[y*f.Width+x]
}

// Set stores the pixel at column x, row y
func (f *Frame) Set(x, y int, c RGB) {
	f.Pixels[y*f.Width+x] = c
}

// Image converts the frame to an opaque RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// ToRGB converts a sum of samplesPerPixel radiance samples to an 8-bit color:
// average, gamma 2 (square root), clamp to [0, 0.999] and scale by 256.
func ToRGB(sum core.Color, samplesPerPixel int) RGB {
	scaled := sum.Divide(float64(samplesPerPixel))
	// NaN and negative samples would poison the square root
	scaled = core.NewVec3(sanitize(scaled.X), sanitize(scaled.Y), sanitize(scaled.Z))
	c := scaled.GammaCorrect(2).Clamp(0, 0.999)
	return RGB{
		R: uint8(256 * c.X),
		G: uint8(256 * c.Y),
		B: uint8(256 * c.Z),
	}
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
