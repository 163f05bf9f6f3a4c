package material

import (
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	random := core.NewRandom(42)

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction

	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflectionStaysAboveSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	random := core.NewRandom(7)

	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	// Grazing incidence makes many fuzzed directions dip below the surface
	rayIn := core.NewRay(core.NewVec3(-1, 0.05, 0), core.NewVec3(1, -0.05, 0))

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, random)
		if !ok {
			absorbed++
			continue
		}
		scattered++
		if scatter.Scattered.Direction.Dot(normal) <= 0 {
			t.Fatalf("Scattered direction %v is not above the surface", scatter.Scattered.Direction)
		}
		assertAttenuationInUnitRange(t, scatter.Attenuation)
	}

	if absorbed == 0 || scattered == 0 {
		t.Errorf("Expected a mix of absorbed and scattered rays at grazing incidence, got absorbed=%d scattered=%d",
			absorbed, scattered)
	}
}

func TestMetal_AbsorbsRayFromBehind(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 0.0)

	// The mirror direction of a ray travelling along the normal points into the surface
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rayIn := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))

	if _, ok := metal.Scatter(rayIn, hit, core.NewRandom(1)); ok {
		t.Error("Expected metal to absorb a reflection pointing into the surface")
	}
}
