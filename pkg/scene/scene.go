package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/geometry"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/lights"
	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Objects      []geometry.Shape // Objects in scan order
	Light        lights.Light     // The single point light
	CameraConfig geometry.CameraConfig
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to CreateScene
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
}

type sceneEntry struct {
	info    SceneInfo
	factory func() *Scene
}

var registry = map[string]sceneEntry{
	"island": {
		info: SceneInfo{
			ID:          "island",
			DisplayName: "Island",
			Description: "Block island with trees, hills and a water channel",
		},
		factory: NewIslandScene,
	},
	"showcase": {
		info: SceneInfo{
			ID:          "showcase",
			DisplayName: "Showcase",
			Description: "Mirror and glass blocks over a checkered floor",
		},
		factory: NewShowcaseScene,
	},
}

// CreateScene builds a fresh copy of the named scene
func CreateScene(name string) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return entry.factory(), nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the metadata of every registered scene, sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		infos = append(infos, registry[name].info)
	}
	return infos
}

// NewCamera creates a camera from the scene's initial configuration
func (s *Scene) NewCamera() *geometry.Camera {
	return geometry.NewCamera(s.CameraConfig)
}

// NewRaytracer creates a raytracer over the scene's objects and light
func (s *Scene) NewRaytracer() *renderer.Raytracer {
	return renderer.NewRaytracer(s.Objects, s.Light)
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}
