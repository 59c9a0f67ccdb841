package components

import (
	"image/color"

	"github.com/automoto/lodestone/surface"
	"github.com/yohamta/donburi"
)

// ElementData is one node of the playground surface. Transform, Styles and
// Attrs are the sink state written by the cursor engine.
type ElementData struct {
	ID     surface.Element
	Name   string
	Parent surface.Element
	Z      int
	Color  color.RGBA
	Label  string
	Round  bool

	Transform string
	Styles    map[string]string
	Attrs     map[string]string
}

var Element = donburi.NewComponentType[ElementData]()
