package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKeys handles the playground shortcuts: F1 toggles the HUD, F2 the
// target bounds, F3 the sound, F4 the settings panel, E and Q step through
// the follow curves and Space freezes or resumes the cursor position.
func UpdateKeys(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		ToggleHUD()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		ToggleBounds()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		ToggleSound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		TogglePanel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		CycleFollowEasing(ecs, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		CycleFollowEasing(ecs, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ToggleFreeze(ecs)
	}
}
