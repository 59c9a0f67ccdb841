package factory

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/lodestone/archetypes"
	"github.com/automoto/lodestone/components"
	"github.com/automoto/lodestone/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads every scene next to tmxPath and selects tmxPath itself.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, tmxPath string) (*donburi.Entry, error) {
	scenes, err := leveldata.LoadAll(fsys, path.Dir(tmxPath))
	if err != nil {
		return nil, err
	}

	name := leveldata.SceneName(tmxPath)
	index := -1
	for i, s := range scenes {
		if s.Name == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("scene %s not found", tmxPath)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Scenes:       scenes,
		SceneIndex:   index,
		CurrentScene: scenes[index],
	})
	return level, nil
}
