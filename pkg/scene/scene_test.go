package scene

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

func TestNewScene(t *testing.T) {
	tests := []struct {
		id            string
		width, height int
	}{
		{"default", 400, 225},
		{"materials", 400, 225},
		{"defocus", 400, 225},
		{"random", 600, 400},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, err := NewScene(tt.id)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			config := s.GetSamplingConfig()
			if config.Width != tt.width || config.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, config.Width, config.Height)
			}
			if err := config.Validate(); err != nil {
				t.Errorf("Expected valid sampling config, got %v", err)
			}
			if s.GetObjectCount() == 0 {
				t.Error("Expected scene to contain objects")
			}
			if s.GetCamera() == nil {
				t.Error("Expected scene to have a camera")
			}
		})
	}
}

func TestNewScene_Unknown(t *testing.T) {
	if _, err := NewScene("cornell"); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestListScenes(t *testing.T) {
	var ids []string
	for _, info := range ListScenes() {
		ids = append(ids, info.ID)
		if info.DisplayName == "" {
			t.Errorf("Scene %s has no display name", info.ID)
		}
		if _, err := NewScene(info.ID); err != nil {
			t.Errorf("Listed scene %s cannot be built: %v", info.ID, err)
		}
	}

	expected := []string{"default", "defocus", "materials", "random"}
	if diff := cmp.Diff(expected, ids); diff != "" {
		t.Errorf("scene list mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	expected := renderer.SamplingConfig{Width: 400, Height: 225, SamplesPerPixel: 100, MaxDepth: 50}
	if diff := cmp.Diff(expected, s.GetSamplingConfig()); diff != "" {
		t.Errorf("sampling config mismatch (-want +got):\n%s", diff)
	}
	if s.GetObjectCount() != 2 {
		t.Errorf("Expected 2 spheres, got %d", s.GetObjectCount())
	}
}

func TestRandomScene_Deterministic(t *testing.T) {
	a := NewRandomScene()
	b := NewRandomScene()
	if a.GetObjectCount() != b.GetObjectCount() {
		t.Errorf("Expected identical layouts, got %d and %d objects", a.GetObjectCount(), b.GetObjectCount())
	}
	if a.GetObjectCount() < 4 {
		t.Errorf("Expected ground, small spheres and three large spheres, got %d objects", a.GetObjectCount())
	}
}

func TestSetWidth(t *testing.T) {
	s := NewDefaultScene()
	s.SetWidth(160)
	if got := s.GetSamplingConfig(); got.Width != 160 || got.Height != 90 {
		t.Errorf("Expected 160x90, got %dx%d", got.Width, got.Height)
	}

	s.SetWidth(1)
	if got := s.GetSamplingConfig(); got.Height != 1 {
		t.Errorf("Expected height clamped to 1, got %d", got.Height)
	}
}

func TestDefaultScene_Render(t *testing.T) {
	s := NewDefaultScene()
	s.SetWidth(64)
	s.SamplingConfig.SamplesPerPixel = 16

	rt, err := renderer.NewRaytracer(s, renderer.DefaultConfig(), log.New("test"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	frame, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if frame.Width != 64 || frame.Height != 36 {
		t.Fatalf("Expected 64x36 frame, got %dx%d", frame.Width, frame.Height)
	}

	brightness := func(p renderer.RGB) int { return int(p.R) + int(p.G) + int(p.B) }

	// Top row is open sky; the sphere silhouette sits just below the image center
	sky := frame.At(32, 0)
	sphere := frame.At(32, 20)
	if brightness(sky) <= brightness(sphere) {
		t.Errorf("Expected sky %v brighter than sphere %v", sky, sphere)
	}
	if sky.B < sky.R {
		t.Errorf("Expected blue sky at the top, got %v", sky)
	}
}
