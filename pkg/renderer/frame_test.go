package renderer

import (
	"image/color"
	"testing"
)

func TestFrame_SetAndAt(t *testing.T) {
	frame := NewFrame(3, 2)
	frame.Set(2, 1, RGB{1, 2, 3})

	if got := frame.At(2, 1); got != (RGB{1, 2, 3}) {
		t.Errorf("Expected {1 2 3}, got %v", got)
	}
	if got := frame.Pixels[1*3+2]; got != (RGB{1, 2, 3}) {
		t.Errorf("Expected row-major storage, got %v at index 5", got)
	}
	if got := frame.At(0, 0); got != (RGB{}) {
		t.Errorf("Expected new frame to be black, got %v", got)
	}
}

func TestFrame_Image(t *testing.T) {
	frame := NewFrame(2, 2)
	frame.Set(0, 0, RGB{255, 0, 0})
	frame.Set(1, 1, RGB{0, 0, 255})

	img := frame.Image()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", b)
	}

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{1, 0, color.RGBA{0, 0, 0, 255}},
		{1, 1, color.RGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}
