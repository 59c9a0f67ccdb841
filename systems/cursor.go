package systems

import (
	"github.com/automoto/lodestone/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCursor advances the cursor clock by one ebiten tick.
func UpdateCursor(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	components.Cursor.Get(entry).Clock.Tick(frameMillis())
}

func frameMillis() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1000 / float64(tps)
}
