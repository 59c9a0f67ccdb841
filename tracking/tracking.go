// Package tracking runs the enter/move/leave state machine for one tracked
// point (the raw pointer or the rendered cursor) against the target registry.
package tracking

import (
	"github.com/automoto/lodestone/target"
	dmath "github.com/yohamta/donburi/features/math"
)

// Observer receives broadcast events.
type Observer func(target.Event)

// Dispatcher delivers a transition to the target's own callback first and then,
// when broadcasting is enabled, to every observer in subscription order.
type Dispatcher struct {
	Broadcast bool

	observers []observerEntry
	nextID    int
}

type observerEntry struct {
	id int
	fn Observer
}

// Subscribe adds an observer. The returned cancel func is idempotent.
func (d *Dispatcher) Subscribe(fn Observer) (cancel func()) {
	d.nextID++
	id := d.nextID
	d.observers = append(d.observers, observerEntry{id: id, fn: fn})
	return func() {
		kept := make([]observerEntry, 0, len(d.observers))
		for _, o := range d.observers {
			if o.id != id {
				kept = append(kept, o)
			}
		}
		d.observers = kept
	}
}

func (d *Dispatcher) Dispatch(ev target.Event) {
	ev.Target.Notify(ev)
	if !d.Broadcast {
		return
	}
	for _, o := range d.observers {
		o.fn(ev)
	}
}

// Tracker holds the active target slot of one tracked point.
type Tracker struct {
	Kind target.PointKind

	active *target.Single
	last   dmath.Vec2
}

func NewTracker(kind target.PointKind) *Tracker {
	return &Tracker{Kind: kind}
}

// Active returns the current target, or nil.
func (t *Tracker) Active() *target.Single {
	return t.active
}

// Update evaluates point against targets (registration order) and emits the
// resulting transitions:
//   - the active target no longer contains the point, or was removed: leave;
//   - the first visible target containing the point becomes active, leaving
//     the previous one first;
//   - the active target still matches and the point moved: move.
func (t *Tracker) Update(point dmath.Vec2, targets []*target.Single, visible func(*target.Single) bool, d *Dispatcher) {
	if t.active != nil && (t.active.Removed() || !t.active.Contains(point)) {
		t.emit(d, target.Leave, t.active, point)
		t.active = nil
	}

	for _, s := range targets {
		if s.Removed() || !s.Contains(point) {
			continue
		}
		if visible != nil && !visible(s) {
			continue
		}
		if s == t.active {
			if point != t.last {
				t.emit(d, target.Move, s, point)
			}
			break
		}
		if t.active != nil {
			t.emit(d, target.Leave, t.active, point)
		}
		t.active = s
		t.emit(d, target.Enter, s, point)
		break
	}
	t.last = point
}

// Release forces a leave for the active target, if any.
func (t *Tracker) Release(d *Dispatcher) {
	if t.active == nil {
		return
	}
	t.emit(d, target.Leave, t.active, t.last)
	t.active = nil
}

func (t *Tracker) emit(d *Dispatcher, typ target.EventType, s *target.Single, point dmath.Vec2) {
	if d == nil {
		return
	}
	d.Dispatch(target.Event{
		Type:     typ,
		Point:    t.Kind,
		Target:   s,
		Position: point,
	})
}
