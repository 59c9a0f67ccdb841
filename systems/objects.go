package systems

import (
	"github.com/automoto/lodestone/components"
	"github.com/automoto/lodestone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves floating elements along their tween. Targets pick up
// the new layout box on the next cursor frame.
func UpdateObjects(ecs *ecs.ECS) {
	dt := float32(frameMillis() / 1000)
	tags.Floating.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		y, _, done := tw.Update(dt)
		if done {
			tw.Reset()
		}
		obj := components.Object.Get(e)
		obj.Y = float64(y)
		obj.Update()
	})
}
