package tags

import "github.com/yohamta/donburi"

var (
	Element = donburi.NewTag().SetName("Element")
	Cursor  = donburi.NewTag().SetName("Cursor")
	// Floating elements bob on a tween and move their layout box.
	Floating = donburi.NewTag().SetName("Floating")
)

// Resolv tags for point queries
const (
	ResolvElement = "element"
	ResolvCursor  = "cursor"
	ResolvProbe   = "probe"
)
