package systems

import (
	"image/color"

	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	boundsColor = color.RGBA{0, 255, 255, 255}
	rectColor   = color.RGBA{100, 100, 100, 255}
)

// DrawDebug outlines every target: the element box in grey, the hit box
// expanded by the target offset in cyan.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug.ShowBounds {
		return
	}
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	for _, s := range components.Cursor.Get(entry).Engine.Targets().Targets() {
		if !s.Present() {
			continue
		}
		r, b := s.Rect, s.Bounds
		vector.StrokeRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), 1, rectColor, false)
		vector.StrokeRect(screen, float32(b.Left), float32(b.Top), float32(b.Width), float32(b.Height), 1, boundsColor, false)
	}
}
