package components

import (
	"github.com/automoto/lodestone/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Scenes       []*leveldata.Scene
	SceneIndex   int
	CurrentScene *leveldata.Scene
}

var Level = donburi.NewComponentType[LevelData]()
