// Package surface declares what the cursor engine needs from its host: element
// geometry, point occlusion queries and a render sink. Hosts implement these
// interfaces; the engine never touches host objects directly.
package surface

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Element is an opaque handle to a host render element.
type Element uint64

// None is the zero handle. It never refers to an element.
const None Element = 0

// Box is an axis-aligned rectangle in screen space.
type Box struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
	Width  float64
	Height float64
}

func NewBox(x, y, w, h float64) Box {
	return Box{
		Top:    y,
		Left:   x,
		Right:  x + w,
		Bottom: y + h,
		Width:  w,
		Height: h,
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p dmath.Vec2) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Expand grows b symmetrically by off on every side.
func (b Box) Expand(off dmath.Vec2) Box {
	return Box{
		Top:    b.Top - off.Y,
		Left:   b.Left - off.X,
		Right:  b.Right + off.X,
		Bottom: b.Bottom + off.Y,
		Width:  b.Width + off.X*2,
		Height: b.Height + off.Y*2,
	}
}

func (b Box) Center() dmath.Vec2 {
	return dmath.NewVec2((b.Left+b.Right)/2, (b.Top+b.Bottom)/2)
}

// Corners returns the four corners inset by d, in the order top-left,
// top-right, bottom-right, bottom-left.
func (b Box) Corners(d float64) [4]dmath.Vec2 {
	return [4]dmath.Vec2{
		dmath.NewVec2(b.Left+d, b.Top+d),
		dmath.NewVec2(b.Right-d, b.Top+d),
		dmath.NewVec2(b.Right-d, b.Bottom-d),
		dmath.NewVec2(b.Left+d, b.Bottom-d),
	}
}

// Geometry reports the live box of an element. ok is false when the element
// is unknown or detached.
type Geometry interface {
	BoundingBox(el Element) (box Box, ok bool)
}

// Occlusion resolves which element is on top at a point and walks the
// element tree upward.
type Occlusion interface {
	TopmostAt(x, y float64) (el Element, ok bool)
	Parent(el Element) (parent Element, ok bool)
}

// Sink receives formatted render output.
type Sink interface {
	Has(el Element) bool
	Transform(el Element) string
	SetTransform(el Element, transform string)
	SetStyle(el Element, name, value string)
	SetAttribute(el Element, name, value string)
}

// Surface is the full host contract.
type Surface interface {
	Geometry
	Occlusion
	Sink
}
