package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the layout box of an element. Transforms written by the
// cursor never move it; only the host does.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
