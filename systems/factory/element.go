package factory

import (
	"image/color"
	"log"

	"github.com/automoto/lodestone/archetypes"
	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/leveldata"
	"github.com/automoto/lodestone/stage"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// floatSeconds is the duration of one leg of a floating element's bob.
const floatSeconds = 2

// CreateElement spawns a scene element, adds its layout box to the space and
// registers it with the stage. Parents must be created before their children.
func CreateElement(ecs *ecs.ECS, st *stage.Stage, space *resolv.Space, el leveldata.Element) *donburi.Entry {
	var e *donburi.Entry
	if el.Float != 0 {
		e = archetypes.FloatingElement.Spawn(ecs)
	} else {
		e = archetypes.Element.Spawn(ecs)
	}

	object := resolv.NewObject(el.X, el.Y, el.W, el.H, tags.ResolvElement)
	space.Add(object)
	components.Object.SetValue(e, components.ObjectData{Object: object})

	data := components.ElementData{
		Name:  el.Name,
		Z:     el.Z,
		Color: parseColor(el.Color, el.Name),
		Label: el.Label,
		Round: el.Round,
	}
	if el.Parent != "" {
		if parent, ok := st.Lookup(el.Parent); ok {
			data.Parent = parent
		} else {
			log.Printf("Warning: element %s: unknown parent %s", el.Name, el.Parent)
		}
	}
	components.Element.SetValue(e, data)

	// The floating element moves using a *gween.Sequence of tweens, moving it up and back down.
	if el.Float != 0 {
		y := float32(el.Y)
		tw := gween.NewSequence()
		tw.Add(
			gween.New(y, y-float32(el.Float), floatSeconds, ease.InOutSine),
			gween.New(y-float32(el.Float), y, floatSeconds, ease.InOutSine),
		)
		components.Tween.Set(e, tw)
	}

	st.Register(e)
	return e
}

// CreateCursorElement spawns the rendered cursor. Its box never enters the
// space, so point queries look through it.
func CreateCursorElement(ecs *ecs.ECS, st *stage.Stage, size float64, fill string) surface.Element {
	e := archetypes.CursorElement.Spawn(ecs)
	components.Object.SetValue(e, components.ObjectData{
		Object: resolv.NewObject(0, 0, size, size, tags.ResolvCursor),
	})
	components.Element.SetValue(e, components.ElementData{
		Name:  "cursor",
		Z:     1 << 20,
		Color: parseColor(fill, "cursor"),
		Round: true,
	})
	return st.Register(e)
}

var defaultElementColor = color.RGBA{60, 60, 70, 255}

func parseColor(s, owner string) color.RGBA {
	if s == "" {
		return defaultElementColor
	}
	c, err := cfg.ParseColor(s)
	if err != nil {
		log.Printf("Warning: element %s: %v", owner, err)
		return defaultElementColor
	}
	return c
}
