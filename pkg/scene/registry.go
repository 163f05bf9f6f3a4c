package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:  SceneInfo{ID: "default", DisplayName: "Default", Description: "Diffuse sphere on a ground sphere under a sky gradient"},
		build: NewDefaultScene,
	},
	"materials": {
		info:  SceneInfo{ID: "materials", DisplayName: "Materials", Description: "Diffuse, hollow glass and metal spheres"},
		build: NewMaterialsScene,
	},
	"defocus": {
		info:  SceneInfo{ID: "defocus", DisplayName: "Defocus Blur", Description: "Material spheres seen through a wide aperture"},
		build: NewDefocusScene,
	},
	"random": {
		info:  SceneInfo{ID: "random", DisplayName: "Random Spheres", Description: "Hundreds of random spheres around three large ones"},
		build: NewRandomScene,
	},
}

// NewScene creates the built-in scene with the given ID
func NewScene(id string) (*Scene, error) {
	builtin, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	return builtin.build(), nil
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, builtin := range builtinScenes {
		scenes = append(scenes, builtin.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}
