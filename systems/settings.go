package systems

import (
	"github.com/automoto/lodestone/assets"
	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/easing"
	"github.com/yohamta/donburi/ecs"
)

func ToggleHUD() {
	cfg.C.Debug.ShowHUD = !cfg.C.Debug.ShowHUD
}

func ToggleBounds() {
	cfg.C.Debug.ShowBounds = !cfg.C.Debug.ShowBounds
}

func ToggleSound() {
	cfg.C.Audio.Enabled = !cfg.C.Audio.Enabled
}

func TogglePanel() {
	cfg.C.Debug.ShowPanel = !cfg.C.Debug.ShowPanel
}

// ToggleFreeze pauses or resumes the rendered cursor position.
func ToggleFreeze(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	cur := components.Cursor.Get(entry)
	cur.Frozen = !cur.Frozen
	PlaySFX(ecs.World, assets.SoundPress)
	if cur.Frozen {
		cur.Engine.PausePositionUpdate()
	} else {
		cur.Engine.StartPositionUpdate()
	}
}

// IsFrozen reports whether the cursor position is paused.
func IsFrozen(ecs *ecs.ECS) bool {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return false
	}
	return components.Cursor.Get(entry).Frozen
}

// CycleFollowEasing moves the follow curve step places through the curve
// list and returns the new name.
func CycleFollowEasing(ecs *ecs.ECS, step int) string {
	name := easing.Cycle(cfg.C.Cursor.Easing, step)
	cfg.C.Cursor.Easing = name
	ApplyCursorConfig(ecs)
	return name
}

// FollowEasingLabel names the follow curve, marking curves that overshoot.
func FollowEasingLabel() string {
	return easing.Describe(cfg.C.Cursor.Easing)
}
