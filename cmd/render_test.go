package cmd

import (
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/urfave/cli"
)

func newTestContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("render", flag.ContinueOnError)
	set.String("scene", "default", "")
	set.Int("width", 0, "")
	set.Int("spp", 0, "")
	set.Int("depth", 0, "")
	set.Int("workers", 0, "")
	set.Int("rows-per-tile", 1, "")
	set.Int64("seed", 42, "")
	if err := set.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected renderer.SamplingConfig
	}{
		{
			name:     "scene defaults",
			args:     nil,
			expected: renderer.SamplingConfig{Width: 400, Height: 225, SamplesPerPixel: 100, MaxDepth: 50},
		},
		{
			name:     "width keeps aspect ratio",
			args:     []string{"-width", "160"},
			expected: renderer.SamplingConfig{Width: 160, Height: 90, SamplesPerPixel: 100, MaxDepth: 50},
		},
		{
			name:     "quality overrides",
			args:     []string{"-spp", "8", "-depth", "0"},
			expected: renderer.SamplingConfig{Width: 400, Height: 225, SamplesPerPixel: 8, MaxDepth: 0},
		},
		{
			name:     "other scene",
			args:     []string{"-scene", "random"},
			expected: renderer.SamplingConfig{Width: 600, Height: 400, SamplesPerPixel: 50, MaxDepth: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(newTestContext(t, tt.args...))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := sc.GetSamplingConfig(); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestCreateScene_Unknown(t *testing.T) {
	sc, err := createScene(newTestContext(t, "-scene", "nonexistent"))
	if err == nil {
		t.Error("Expected error for unknown scene")
	}
	if sc != nil {
		t.Errorf("Expected nil scene, got %v", sc)
	}
}

func TestRenderConfig(t *testing.T) {
	if got := renderConfig(newTestContext(t)); got != renderer.DefaultConfig() {
		t.Errorf("Expected default config, got %+v", got)
	}

	got := renderConfig(newTestContext(t, "-workers", "3", "-rows-per-tile", "4", "-seed", "7"))
	expected := renderer.Config{NumWorkers: 3, RowsPerTile: 4, Seed: 7}
	if got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestFormatFrameStats(t *testing.T) {
	stats := renderer.RenderStats{
		Width:           40,
		Height:          20,
		TotalSamples:    8000,
		SamplesPerPixel: 10,
		MaxDepth:        5,
		Tiles:           20,
		Workers:         4,
		Duration:        2 * time.Second,
	}

	table := formatFrameStats(stats)
	for _, want := range []string{"40x20", "Samples/pixel", "2s", "4000"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected %q in stats table:\n%s", want, table)
		}
	}
}
