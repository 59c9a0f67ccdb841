package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/lodestone/components"
	"github.com/automoto/lodestone/fonts"
	"github.com/automoto/lodestone/stage"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/tags"
	"github.com/automoto/lodestone/target"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const labelPadding = 8

var (
	hoverOutline = color.RGBA{255, 255, 255, 200}
	labelColor   = color.RGBA{240, 240, 240, 255}
	// Reused between frames to avoid allocations
	drawQueue []*donburi.Entry
)

// DrawElements renders scene elements in z order with their sink state
// applied. The element under the pointer's active target gets an outline.
func DrawElements(ecs *ecs.ECS, screen *ebiten.Image) {
	drawQueue = drawQueue[:0]
	tags.Element.Each(ecs.World, func(e *donburi.Entry) {
		drawQueue = append(drawQueue, e)
	})
	sort.SliceStable(drawQueue, func(i, j int) bool {
		a := components.Element.Get(drawQueue[i])
		b := components.Element.Get(drawQueue[j])
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.ID < b.ID
	})

	hovered := surface.None
	if entry, ok := components.Cursor.First(ecs.World); ok {
		if s := components.Cursor.Get(entry).Engine.ActiveTarget(target.Pointer); s != nil {
			hovered = s.Element
		}
	}

	for _, e := range drawQueue {
		data := components.Element.Get(e)
		p := placement(e)
		drawShape(screen, p, data)
		if data.ID == hovered {
			vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 2, hoverOutline, false)
		}
		if data.Label != "" {
			text.Draw(screen, data.Label, fonts.Label.Get(), int(p.X)+labelPadding, int(p.Y)+labelPadding+12, labelColor)
		}
	}
}

// DrawCursor renders the cursor element on top of everything else.
func DrawCursor(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Cursor.Each(ecs.World, func(e *donburi.Entry) {
		drawShape(screen, placement(e), components.Element.Get(e))
	})
}

func placement(e *donburi.Entry) stage.Placement {
	o := components.Object.Get(e)
	return stage.Place(surface.NewBox(o.X, o.Y, o.W, o.H), components.Element.Get(e))
}

func drawShape(screen *ebiten.Image, p stage.Placement, data *components.ElementData) {
	if p.Opacity <= 0 || p.W <= 0 || p.H <= 0 {
		return
	}
	c := fade(data.Color, p.Opacity)
	if data.Round {
		r := p.W / 2
		if p.H < p.W {
			r = p.H / 2
		}
		vector.FillCircle(screen, float32(p.X+p.W/2), float32(p.Y+p.H/2), float32(r), c, true)
		return
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), c, false)
}

// fade scales a premultiplied color by opacity.
func fade(c color.RGBA, opacity float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
