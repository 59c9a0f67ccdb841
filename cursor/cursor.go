// Package cursor is the engine object: a custom cursor that follows the
// pointer on a frame clock, tracks targets for both the raw pointer and the
// rendered cursor, applies magnetism and animates extra properties.
//
// Every tick runs three phases in a fixed order:
//
//	frame       properties and target boxes recompute, the follow timeline
//	            steps toward the pointer, trackers emit transitions and
//	            magnetism displaces the cursor or targets
//	render      formatted values go to the surface sink
//	postRender  every timeline commits, velocity and direction update
package cursor

import (
	"errors"
	"math"

	"github.com/automoto/lodestone/clock"
	"github.com/automoto/lodestone/easing"
	"github.com/automoto/lodestone/magnet"
	"github.com/automoto/lodestone/property"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/target"
	"github.com/automoto/lodestone/timeline"
	"github.com/automoto/lodestone/tracking"
	"github.com/automoto/lodestone/visibility"
	dmath "github.com/yohamta/donburi/features/math"
)

var ErrNilSurface = errors.New("cursor: surface is required")

type Cursor struct {
	cfg       Config
	surf      surface.Surface
	precision int

	clock    Clock
	ownClock *clock.Loop

	props      *property.Engine
	targets    *target.Registry
	detector   *visibility.Detector
	dispatcher *tracking.Dispatcher
	mouseSlot  *tracking.Tracker
	cursorSlot *tracking.Tracker

	follow timeline.Vec
	mouse  dmath.Vec2
	base   dmath.Vec2
	coords dmath.Vec2
	prev   dmath.Vec2
	size   dmath.Vec2

	velocity  dmath.Vec2
	direction dmath.Vec2

	pusher     *magnet.Pusher
	pushTarget *target.Single
	pullers    map[*target.Single]*magnet.Puller

	autoUpdate bool
	interacted bool
	shown      int // -1 unknown, 0 hidden, 1 shown
	closed     bool
}

// New builds a cursor on surf and registers its frame handler with the clock.
func New(cfg Config, surf surface.Surface) (*Cursor, error) {
	if surf == nil {
		return nil, ErrNilSurface
	}
	cfg = cfg.withDefaults()

	c := &Cursor{
		cfg:        cfg,
		surf:       surf,
		props:      property.NewEngine(surf),
		targets:    target.NewRegistry(surf),
		detector:   visibility.NewDetector(surf),
		dispatcher: &tracking.Dispatcher{Broadcast: cfg.EmitGlobal},
		mouseSlot:  tracking.NewTracker(target.Pointer),
		cursorSlot: tracking.NewTracker(target.Cursor),
		follow:     timeline.NewVec(cfg.InitialPosition, cfg.Duration, cfg.Easing),
		mouse:      cfg.InitialPosition,
		base:       cfg.InitialPosition,
		coords:     cfg.InitialPosition,
		prev:       cfg.InitialPosition,
		direction:  dmath.NewVec2(1, 1),
		pusher:     magnet.NewPusher(magnet.Config{}),
		pullers:    make(map[*target.Single]*magnet.Puller),
		autoUpdate: cfg.AutoStartPositionUpdate,
		shown:      -1,
	}
	c.precision = property.DefaultPrecision
	if cfg.Precision != nil {
		c.precision = *cfg.Precision
	}
	c.refreshSize()

	for _, d := range cfg.Props {
		c.props.Add(d)
	}
	for _, d := range cfg.Targets {
		c.targets.AddTarget(d)
	}

	c.clock = cfg.Clock
	if c.clock == nil {
		c.ownClock = clock.New()
		c.ownClock.Start()
		c.clock = c.ownClock
	}
	c.clock.Add(c.Tick, cfg.FrameID, cfg.Priority)
	return c, nil
}

// Close unregisters the frame handler and emits a final leave for every
// active target. It is safe to call more than once.
func (c *Cursor) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.clock.Remove(c.cfg.FrameID)
	c.mouseSlot.Release(c.dispatcher)
	c.cursorSlot.Release(c.dispatcher)
}

// Clock returns the loop the cursor created when Config.Clock was nil.
func (c *Cursor) Clock() *clock.Loop {
	return c.ownClock
}

// Tick runs one full frame. It is the callback registered with the clock.
func (c *Cursor) Tick(delta float64) {
	c.frame(delta)
	c.render(delta)
	c.postRender(delta)
}

// Move feeds a primary pointer sample.
func (c *Cursor) Move(p dmath.Vec2) {
	c.mouse = p
	c.interacted = true
}

// Touch feeds a primary touch sample; ignored unless DetectTouch is set.
func (c *Cursor) Touch(p dmath.Vec2) {
	if !c.cfg.DetectTouch {
		return
	}
	c.Move(p)
}

// SetFollow changes the follow curve. The motion in flight continues from the
// position already reached.
func (c *Cursor) SetFollow(fn easing.Func, duration float64) {
	if fn == nil {
		fn = easing.OutCubic
	}
	c.cfg.Easing = fn
	c.cfg.Duration = duration
	for _, tl := range []*timeline.Timeline{&c.follow.X, &c.follow.Y} {
		tl.Easing = fn
		tl.Duration = duration
	}
}

// SetEmitGlobal toggles broadcasting to subscribers.
func (c *Cursor) SetEmitGlobal(on bool) {
	c.cfg.EmitGlobal = on
	c.dispatcher.Broadcast = on
}

func (c *Cursor) StartPositionUpdate() {
	c.autoUpdate = true
}

func (c *Cursor) PausePositionUpdate() {
	c.autoUpdate = false
}

// Coords is the rendered cursor center, magnetism included.
func (c *Cursor) Coords() dmath.Vec2 {
	return c.coords
}

// Mouse is the last pointer sample.
func (c *Cursor) Mouse() dmath.Vec2 {
	return c.mouse
}

// Velocity is the absolute per-axis speed of the cursor in px/ms.
func (c *Cursor) Velocity() dmath.Vec2 {
	return c.velocity
}

// Direction is +1 or -1 per axis.
func (c *Cursor) Direction() dmath.Vec2 {
	return c.direction
}

func (c *Cursor) Size() dmath.Vec2 {
	return c.size
}

func (c *Cursor) Properties() *property.Engine {
	return c.props
}

func (c *Cursor) Targets() *target.Registry {
	return c.targets
}

func (c *Cursor) AddProperty(d property.Descriptor) *property.Property {
	return c.props.Add(d)
}

func (c *Cursor) RemoveProperty(id string) bool {
	return c.props.Remove(id)
}

func (c *Cursor) Property(id string) (*property.Property, bool) {
	return c.props.Get(id)
}

func (c *Cursor) AddTarget(d target.Descriptor) []*target.Single {
	return c.targets.AddTarget(d)
}

func (c *Cursor) RemoveTarget(id string) bool {
	return c.targets.RemoveTarget(id)
}

// PullElement detaches one element from its target.
func (c *Cursor) PullElement(el surface.Element) bool {
	return c.targets.Pull(el)
}

// ActiveTarget returns the target currently occupied by the given point.
func (c *Cursor) ActiveTarget(kind target.PointKind) *target.Single {
	if kind == target.Cursor {
		return c.cursorSlot.Active()
	}
	return c.mouseSlot.Active()
}

// MagnetReleased reports whether no push magnetism displaces the cursor.
func (c *Cursor) MagnetReleased() bool {
	return c.pusher.Released()
}

// Subscribe registers an observer for every broadcast target event.
func (c *Cursor) Subscribe(fn func(target.Event)) (cancel func()) {
	return c.dispatcher.Subscribe(fn)
}

// On registers an observer for one point kind and event type.
func (c *Cursor) On(kind target.PointKind, typ target.EventType, fn func(target.Event)) (cancel func()) {
	return c.dispatcher.Subscribe(func(ev target.Event) {
		if ev.Point == kind && ev.Type == typ {
			fn(ev)
		}
	})
}

func (c *Cursor) half() dmath.Vec2 {
	return c.size.MulScalar(0.5)
}

func (c *Cursor) refreshSize() {
	if c.cfg.Element == surface.None {
		return
	}
	if box, ok := c.surf.BoundingBox(c.cfg.Element); ok {
		c.size = dmath.NewVec2(box.Width, box.Height)
	}
}

func (c *Cursor) frame(dt float64) {
	c.props.Frame(dt)
	c.targets.Frame(dt)
	c.refreshSize()

	c.base = c.follow.Step(timeline.Clamp(dt, c.cfg.Duration), c.mouse)
	c.coords = c.base.Add(c.pusher.Displacement())

	targets := c.targets.Targets()
	visible := c.detector.IsVisible
	c.mouseSlot.Update(c.mouse, targets, visible, c.dispatcher)
	c.cursorSlot.Update(c.coords, targets, visible, c.dispatcher)

	c.updatePush(dt)
	c.updatePull(dt, targets)
}

func (c *Cursor) updatePush(dt float64) {
	active := c.mouseSlot.Active()
	if active != nil {
		if m := active.Magnetism(); m != nil && m.Mode == magnet.Push {
			if !c.pusher.Engaged() || c.pushTarget != active {
				c.pusher.Engage(*m)
				c.pushTarget = active
			}
		} else if c.pusher.Engaged() {
			c.pusher.Disengage()
		}
	} else if c.pusher.Engaged() {
		c.pusher.Disengage()
	}

	if c.pushTarget == nil {
		return
	}
	half := c.half()
	disp := c.pusher.Update(dt, c.pushTarget.Rect, half, c.base.Sub(half))
	c.coords = c.base.Add(disp)
	if c.pusher.Released() {
		c.pushTarget = nil
	}
}

func (c *Cursor) updatePull(dt float64, targets []*target.Single) {
	active := c.mouseSlot.Active()
	for _, s := range targets {
		m := s.Magnetism()
		if m == nil || m.Mode != magnet.Pull || s.Removed() {
			continue
		}
		p, ok := c.pullers[s]
		if !ok {
			p = magnet.NewPuller(*m)
			c.pullers[s] = p
		}
		p.Update(dt, s == active, c.mouse, s.Rect.Center())
	}
	// Detached targets are no longer in the snapshot; ease them back to rest.
	for s, p := range c.pullers {
		if s.Removed() {
			p.Update(dt, false, c.mouse, s.Rect.Center())
		}
	}
}

func (c *Cursor) render(dt float64) {
	el := c.cfg.Element
	if el != surface.None && c.surf.Has(el) {
		c.renderVisibility(el)
		if c.autoUpdate {
			topLeft := c.coords.Sub(c.half())
			arg := c.format(topLeft.X) + "px, " + c.format(topLeft.Y) + "px, 0px"
			c.surf.SetTransform(el, surface.MergeTransform(c.surf.Transform(el), "translate3d", arg))
		}
	}

	c.props.Render(dt)

	for s, p := range c.pullers {
		if !c.surf.Has(s.Element) {
			continue
		}
		d := p.Displacement()
		arg := c.format(d.X) + "px, " + c.format(d.Y) + "px"
		c.surf.SetTransform(s.Element, surface.MergeTransform(c.surf.Transform(s.Element), "translate", arg))
	}
}

func (c *Cursor) renderVisibility(el surface.Element) {
	want := 1
	if c.cfg.HiddenUntilFirstInteraction && !c.interacted {
		want = 0
	}
	if want == c.shown {
		return
	}
	if want == 0 {
		c.surf.SetStyle(el, "opacity", "0")
	} else {
		c.surf.SetStyle(el, "opacity", "1")
	}
	c.shown = want
}

func (c *Cursor) format(v float64) string {
	return property.FormatValue(v, c.precision, c.cfg.RenderByPixel)
}

func (c *Cursor) postRender(dt float64) {
	c.props.PostRender(dt)
	c.follow.Commit()
	c.pusher.Commit()
	for s, p := range c.pullers {
		p.Commit()
		if s.Removed() && p.AtRest() {
			delete(c.pullers, s)
		}
	}

	if dt > 0 {
		d := c.coords.Sub(c.prev)
		v := dmath.NewVec2(d.X/dt, d.Y/dt)
		c.direction = dmath.NewVec2(sign(v.X), sign(v.Y))
		c.velocity = dmath.NewVec2(math.Abs(v.X), math.Abs(v.Y))
	} else {
		c.velocity = dmath.Vec2{}
	}
	c.prev = c.coords
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
