package components

import (
	"github.com/automoto/lodestone/clock"
	"github.com/automoto/lodestone/cursor"
	"github.com/automoto/lodestone/surface"
	"github.com/yohamta/donburi"
)

// CursorData owns the engine and the clock that drives it.
type CursorData struct {
	Engine  *cursor.Cursor
	Clock   *clock.Loop
	Element surface.Element
	// Cancel detaches the event forwarding subscription.
	Cancel  func()
	Frozen  bool
}

var Cursor = donburi.NewComponentType[CursorData]()
