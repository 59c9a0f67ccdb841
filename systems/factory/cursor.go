package factory

import (
	"fmt"
	"log"

	"github.com/automoto/lodestone/archetypes"
	"github.com/automoto/lodestone/clock"
	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/cursor"
	"github.com/automoto/lodestone/leveldata"
	"github.com/automoto/lodestone/stage"
	"github.com/automoto/lodestone/surface"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCursor spawns the cursor element and the engine driving it, then
// registers the scene targets. The engine ticks on its own clock loop, which
// UpdateCursor advances once per ebiten update.
func CreateCursor(ecs *ecs.ECS, st *stage.Stage, scene *leveldata.Scene) (*donburi.Entry, error) {
	c := cfg.C.Cursor
	el := CreateCursorElement(ecs, st, c.Size, c.Color)

	cursorCfg, err := c.ToCursor(el, st.Lookup)
	if err != nil {
		return nil, err
	}
	loop := clock.New()
	loop.Start()
	cursorCfg.Clock = loop
	cursorCfg.InitialPosition = dmath.NewVec2(float64(cfg.C.Window.Width)/2, float64(cfg.C.Window.Height)/2)

	engine, err := cursor.New(cursorCfg, st)
	if err != nil {
		return nil, fmt.Errorf("create cursor: %w", err)
	}

	for _, t := range scene.Targets {
		elements := make([]surface.Element, 0, len(t.Elements))
		for _, name := range t.Elements {
			if e, ok := st.Lookup(name); ok {
				elements = append(elements, e)
			}
		}
		d, err := t.Descriptor(elements, nil)
		if err != nil {
			log.Printf("Warning: skipping target: %v", err)
			continue
		}
		engine.AddTarget(d)
	}

	entry := archetypes.Cursor.Spawn(ecs)
	components.Cursor.SetValue(entry, components.CursorData{
		Engine:  engine,
		Clock:   loop,
		Element: el,
	})
	components.EventLog.SetValue(entry, components.EventLogData{Max: cfg.C.Debug.EventLogSize})
	return entry, nil
}
