package systems

import (
	"sync"

	"github.com/automoto/lodestone/assets"
	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ebiten allows a single audio context per process, shared by every scene.
var (
	globalAudioContext *audio.Context
	sfxCache           = map[assets.SoundID][]byte{}
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.C.Audio.SampleRate)
	})
}

// UpdateAudio plays the cues queued since the last update.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, id := range audioData.PendingSFX {
		playSFX(id)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id assets.SoundID) {
	if !cfg.C.Audio.Enabled || cfg.C.Audio.Volume <= 0 {
		return
	}
	initGlobalAudio()

	pcm, ok := sfxCache[id]
	if !ok {
		pcm = assets.SFX(id, globalAudioContext.SampleRate())
		sfxCache[id] = pcm
	}
	if pcm == nil {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(cfg.C.Audio.Volume)
	player.Play()
}

// PlaySFX queues a cue for the next UpdateAudio.
func PlaySFX(w donburi.World, id assets.SoundID) {
	a := GetOrCreateAudio(w)
	a.PendingSFX = append(a.PendingSFX, id)
}

// GetOrCreateAudio returns the singleton Audio component for this world,
// creating it if needed.
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]assets.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
