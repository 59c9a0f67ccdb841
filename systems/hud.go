package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/fonts"
	"github.com/automoto/lodestone/target"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudWidth      = 300
	hudLineHeight = 16
)

var (
	hudBackground = color.RGBA{20, 20, 20, 200}
	hudText       = color.RGBA{220, 220, 220, 255}
)

// DrawHUD prints the cursor state and the most recent target events in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug.ShowHUD {
		return
	}
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	engine := components.Cursor.Get(entry).Engine
	events := components.EventLog.Get(entry)

	coords, mouse := engine.Coords(), engine.Mouse()
	vel, dir := engine.Velocity(), engine.Direction()
	lines := []string{
		fmt.Sprintf("mouse   %7.1f %7.1f", mouse.X, mouse.Y),
		fmt.Sprintf("cursor  %7.1f %7.1f", coords.X, coords.Y),
		fmt.Sprintf("speed   %7.3f %7.3f", vel.X, vel.Y),
		fmt.Sprintf("dir     %+7.0f %+7.0f", dir.X, dir.Y),
		"hover   " + activeName(engine.ActiveTarget(target.Pointer)),
		"magnet  " + magnetState(engine.MagnetReleased()),
		"",
	}
	for _, p := range engine.Properties().Properties() {
		lines = append(lines, fmt.Sprintf("%-14s %7.3f %5.0fms %s", p.ID, p.Current(), p.Elapsed(), settledState(p.Settled())))
	}
	lines = append(lines, "")
	lines = append(lines, events.Lines...)

	face := fonts.Small.Get()
	height := float32(len(lines)*hudLineHeight + hudMargin)
	vector.FillRect(screen, hudMargin, hudMargin, hudWidth, height, hudBackground, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 2*hudMargin, 2*hudMargin+i*hudLineHeight+4, hudText)
	}
}

func activeName(s *target.Single) string {
	if s == nil {
		return "-"
	}
	return s.ID
}

func settledState(settled bool) string {
	if settled {
		return "settled"
	}
	return "moving"
}

func magnetState(released bool) string {
	if released {
		return "released"
	}
	return "engaged"
}
