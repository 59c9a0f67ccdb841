package systems

import (
	"github.com/automoto/lodestone/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput samples the mouse and the primary touch and feeds the cursor.
// Must run BEFORE UpdateCursor in the system order.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	engine := components.Cursor.Get(entry).Engine
	pointer := components.Pointer.Get(entry)
	pointer.Previous = pointer.Current

	// The first finger down owns the cursor until it lifts.
	if !pointer.Touching {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		if len(touchIDs) > 0 {
			pointer.TouchID = int(touchIDs[0])
			pointer.Touching = true
		}
	}
	if pointer.Touching {
		id := ebiten.TouchID(pointer.TouchID)
		if inpututil.IsTouchJustReleased(id) {
			pointer.Touching = false
		} else {
			x, y := ebiten.TouchPosition(id)
			pointer.Current = dmath.NewVec2(float64(x), float64(y))
			if pointer.Current != pointer.Previous {
				engine.Touch(pointer.Current)
			}
			return
		}
	}

	x, y := ebiten.CursorPosition()
	pointer.Current = dmath.NewVec2(float64(x), float64(y))
	if pointer.Current != pointer.Previous {
		engine.Move(pointer.Current)
	}
}
