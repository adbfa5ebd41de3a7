package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnknownScene is returned by NewSceneByName for names with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Description string    `json:"description"`
	Background  core.Vec3 `json:"background"` // Background the scene was designed for
}

type builtinScene struct {
	info    SceneInfo
	factory func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Reflective Spheres",
			Description: "Three spheres on a yellow ground with mirror reflections",
			Background:  core.Black,
		},
		factory: NewDefaultScene,
	},
	"basic": {
		info: SceneInfo{
			ID:          "basic",
			DisplayName: "Basic Spheres",
			Description: "The same spheres lit without reflections",
			Background:  core.White,
		},
		factory: NewBasicScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewSceneByName builds the built-in scene with the given ID
func NewSceneByName(name string) (*Scene, SceneInfo, error) {
	b, ok := builtinScenes[name]
	if !ok {
		return nil, SceneInfo{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.factory(), b.info, nil
}
