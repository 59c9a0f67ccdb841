// Package stage is the playground surface: element entries of a donburi world
// laid out in a resolv space.
//
// Geometry reads each element's resolv object, which holds the layout box.
// Occlusion moves a one-pixel probe object to the queried point and checks the
// space cells under it; the element with the highest z wins, later elements
// winning ties. Sink writes land in the element's component data and are
// only interpreted at draw time, so they never feed back into geometry.
package stage

import (
	"github.com/automoto/lodestone/components"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type Stage struct {
	world   donburi.World
	space   *resolv.Space
	probe   *resolv.Object
	entries map[surface.Element]donburi.Entity
	names   map[string]surface.Element
	next    surface.Element
}

func New(world donburi.World, space *resolv.Space) *Stage {
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	return &Stage{
		world:   world,
		space:   space,
		probe:   probe,
		entries: make(map[surface.Element]donburi.Entity),
		names:   make(map[string]surface.Element),
	}
}

// Register assigns a handle to an entry carrying Element and Object data and
// links the resolv object back to the entry.
func (s *Stage) Register(e *donburi.Entry) surface.Element {
	s.next++
	el := s.next

	data := components.Element.Get(e)
	data.ID = el
	if data.Styles == nil {
		data.Styles = map[string]string{}
	}
	if data.Attrs == nil {
		data.Attrs = map[string]string{}
	}
	if obj := components.Object.Get(e); obj.Object != nil {
		obj.Data = e
	}

	s.entries[el] = e.Entity()
	if data.Name != "" {
		s.names[data.Name] = el
	}
	return el
}

// Lookup finds an element by its scene name.
func (s *Stage) Lookup(name string) (surface.Element, bool) {
	el, ok := s.names[name]
	if !ok {
		return surface.None, false
	}
	if _, live := s.entry(el); !live {
		return surface.None, false
	}
	return el, true
}

// Entry returns the donburi entry behind el.
func (s *Stage) Entry(el surface.Element) (*donburi.Entry, bool) {
	return s.entry(el)
}

func (s *Stage) entry(el surface.Element) (*donburi.Entry, bool) {
	ent, ok := s.entries[el]
	if !ok || !s.world.Valid(ent) {
		return nil, false
	}
	return s.world.Entry(ent), true
}

func (s *Stage) data(el surface.Element) *components.ElementData {
	e, ok := s.entry(el)
	if !ok {
		return nil
	}
	return components.Element.Get(e)
}

func (s *Stage) BoundingBox(el surface.Element) (surface.Box, bool) {
	e, ok := s.entry(el)
	if !ok {
		return surface.Box{}, false
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return surface.Box{}, false
	}
	return surface.NewBox(obj.X, obj.Y, obj.W, obj.H), true
}

func (s *Stage) TopmostAt(x, y float64) (surface.Element, bool) {
	s.probe.X, s.probe.Y = x, y
	s.probe.Update()

	check := s.probe.Check(0, 0, tags.ResolvElement)
	if check == nil {
		return surface.None, false
	}

	p := dmath.NewVec2(x, y)
	var top *components.ElementData
	for _, o := range check.Objects {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		if !surface.NewBox(o.X, o.Y, o.W, o.H).Contains(p) {
			continue
		}
		data := components.Element.Get(e)
		if top == nil || data.Z > top.Z || (data.Z == top.Z && data.ID > top.ID) {
			top = data
		}
	}
	if top == nil {
		return surface.None, false
	}
	return top.ID, true
}

func (s *Stage) Parent(el surface.Element) (surface.Element, bool) {
	data := s.data(el)
	if data == nil || data.Parent == surface.None {
		return surface.None, false
	}
	return data.Parent, true
}

func (s *Stage) Has(el surface.Element) bool {
	_, ok := s.entry(el)
	return ok
}

func (s *Stage) Transform(el surface.Element) string {
	if data := s.data(el); data != nil {
		return data.Transform
	}
	return ""
}

func (s *Stage) SetTransform(el surface.Element, v string) {
	if data := s.data(el); data != nil {
		data.Transform = v
	}
}

func (s *Stage) SetStyle(el surface.Element, name, v string) {
	if data := s.data(el); data != nil {
		data.Styles[name] = v
	}
}

func (s *Stage) SetAttribute(el surface.Element, name, v string) {
	if data := s.data(el); data != nil {
		data.Attrs[name] = v
	}
}

var _ surface.Surface = (*Stage)(nil)
