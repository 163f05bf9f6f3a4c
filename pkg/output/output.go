package output

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// WriteP3 writes the frame as a plain-text PPM: the "P3" header, the size, the
// maximum channel value and then one "R G B" line per pixel, top row first.
func WriteP3(w io.Writer, frame *renderer.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("while writing P3 header: %w", err)
	}
	for _, p := range frame.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("while writing P3 pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing P3 pixels: %w", err)
	}
	return nil
}

// WritePNG encodes the frame as PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("while encoding PNG: %w", err)
	}
	return nil
}

// WriteFile writes the frame to path, choosing PNG for ".png" and P3 otherwise.
// Missing parent directories are created.
func WriteFile(path string, frame *renderer.Frame) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("while creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("while creating output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("while closing output file: %w", closeErr)
		}
	}()

	return Write(f, path, frame)
}

// Write encodes the frame to w using the format implied by name's extension
func Write(w io.Writer, name string, frame *renderer.Frame) error {
	if strings.EqualFold(filepath.Ext(name), ".png") {
		return WritePNG(w, frame)
	}
	return WriteP3(w, frame)
}
