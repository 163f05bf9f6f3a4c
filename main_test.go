package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")

	app := newApp()
	err := app.Run([]string{"pathtracer", "render", "--scene", "default", "--width", "16", "--spp", "2", "--depth", "3", "-o", out})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n16 9\n255\n") {
		t.Errorf("Expected 16x9 P3 header, got %q", data[:min(len(data), 16)])
	}
	if lines := strings.Count(string(data), "\n"); lines != 3+16*9 {
		t.Errorf("Expected %d lines, got %d", 3+16*9, lines)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"render", "--scene", "nonexistent", "--width", "4"}},
		{"zero samples", []string{"render", "--width", "4", "--spp", "0"}},
		{"negative depth", []string{"render", "--width", "4", "--depth", "-1"}},
		{"zero rows per tile", []string{"render", "--width", "4", "--rows-per-tile", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frame.ppm")
			args := append([]string{"pathtracer"}, tt.args...)
			args = append(args, "-o", out)

			if err := newApp().Run(args); err == nil {
				t.Error("Expected error, got none")
			}
			if _, err := os.Stat(out); err == nil {
				t.Error("Expected no output file on error")
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"pathtracer", "scenes"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, id := range []string{"default", "materials", "defocus", "random"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("Expected scene %q in listing:\n%s", id, buf.String())
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	level := log.GetLevel()
	defer log.SetLevel(level)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"verbose scenes", []string{"pathtracer", "-v", "scenes"}, "materials"},
		{"very verbose scenes", []string{"pathtracer", "-vv", "scenes"}, "random"},
		{"version", []string{"pathtracer", "--version"}, "0.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := newApp()
			app.Writer = &buf

			if err := app.Run(tt.args); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected %q in output, got:\n%s", tt.expected, buf.String())
			}
		})
	}

	if got := log.GetLevel(); got != log.Debug {
		t.Errorf("Expected -vv to leave debug level, got %d", got)
	}
}
