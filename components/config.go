package components

import (
	"github.com/automoto/lodestone/config"
	"github.com/yohamta/donburi"
)

// ConfigWatchData is present when the config file is hot reloaded.
type ConfigWatchData struct {
	Path    string
	Watcher *config.Watcher
}

var ConfigWatch = donburi.NewComponentType[ConfigWatchData]()
