// Package property animates named numeric values and writes them to host
// elements as transform functions, styles or attributes.
package property

import (
	"log"

	"github.com/automoto/lodestone/surface"
)

// Engine owns a set of properties and runs their frame lifecycle.
type Engine struct {
	sink  surface.Sink
	props []*Property
	byID  map[string]*Property
	now   float64
}

func NewEngine(sink surface.Sink) *Engine {
	return &Engine{
		sink: sink,
		byID: make(map[string]*Property),
	}
}

// Add registers a property. A nil Precision falls back to DefaultPrecision.
// Invalid descriptors are logged and still registered; they render nothing
// useful but keep their value bookkeeping.
func (e *Engine) Add(d Descriptor) *Property {
	if err := d.Validate(); err != nil {
		log.Printf("Warning: %v", err)
	}
	p := newProperty(d, e.clock)
	e.props = append(e.props, p)
	e.byID[d.ID] = p
	return p
}

// Remove detaches every property registered under id. It reports whether
// anything was removed.
func (e *Engine) Remove(id string) bool {
	kept := make([]*Property, 0, len(e.props))
	removed := false
	for _, p := range e.props {
		if p.ID == id {
			p.removed = true
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false
	}
	e.props = kept
	delete(e.byID, id)
	return true
}

// Get returns the property last registered under id.
func (e *Engine) Get(id string) (*Property, bool) {
	p, ok := e.byID[id]
	return p, ok
}

// Properties returns a snapshot in registration order.
func (e *Engine) Properties() []*Property {
	out := make([]*Property, len(e.props))
	copy(out, e.props)
	return out
}

func (e *Engine) Len() int {
	return len(e.props)
}

// Now is the accumulated frame time in milliseconds.
func (e *Engine) Now() float64 {
	return e.now
}

func (e *Engine) clock() float64 {
	return e.now
}

func (e *Engine) Frame(dt float64) {
	if dt > 0 {
		e.now += dt
	}
	for _, p := range e.props {
		if p.removed {
			continue
		}
		p.frame(dt)
	}
}

func (e *Engine) Render(dt float64) {
	for _, p := range e.props {
		if p.removed {
			continue
		}
		p.render(e.sink)
	}
}

func (e *Engine) PostRender(dt float64) {
	for _, p := range e.props {
		if p.removed {
			continue
		}
		p.postRender()
	}
}
