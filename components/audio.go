package components

import (
	"github.com/automoto/lodestone/assets"
	"github.com/yohamta/donburi"
)

// AudioData queues cues raised during an update (singleton component).
type AudioData struct {
	PendingSFX []assets.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
