package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PointerData stores the current and previous frame's pointer sample.
type PointerData struct {
	Current  dmath.Vec2
	Previous dmath.Vec2
	// TouchID is the primary ebiten touch, valid while Touching.
	TouchID  int
	Touching bool
}

var Pointer = donburi.NewComponentType[PointerData]()
