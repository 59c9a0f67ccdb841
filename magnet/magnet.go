// Package magnet computes magnetism displacements while a target is active.
//
// PULL moves the target toward the tracked point; PUSH anchors the cursor to
// one of nine points on the target. Both run their own displacement timeline,
// independent of the cursor follow timeline, and come back to rest at {0,0}
// when the target is released.
package magnet

import (
	"fmt"
	"math"

	"github.com/automoto/lodestone/easing"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/timeline"
	dmath "github.com/yohamta/donburi/features/math"
)

type Mode int

const (
	Pull Mode = iota
	Push
)

func (m Mode) String() string {
	if m == Push {
		return "push"
	}
	return "pull"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "pull":
		return Pull, nil
	case "push":
		return Push, nil
	}
	return Pull, fmt.Errorf("magnet: unknown mode %q", s)
}

// Anchor names one of nine points on a box.
type Anchor int

const (
	Center Anchor = iota
	TopLeft
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

var anchorNames = map[string]Anchor{
	"center":       Center,
	"top-left":     TopLeft,
	"top":          Top,
	"top-right":    TopRight,
	"right":        Right,
	"bottom-right": BottomRight,
	"bottom":       Bottom,
	"bottom-left":  BottomLeft,
	"left":         Left,
}

func ParseAnchor(s string) (Anchor, error) {
	if s == "" {
		return Center, nil
	}
	a, ok := anchorNames[s]
	if !ok {
		return Center, fmt.Errorf("magnet: unknown anchor %q", s)
	}
	return a, nil
}

// Config describes the magnetism of one target.
type Config struct {
	Mode     Mode
	Easing   easing.Func
	Duration float64
	// Anchor is only used by Push.
	Anchor Anchor
}

// AnchorPoint returns the named point of box.
func AnchorPoint(box surface.Box, a Anchor) dmath.Vec2 {
	midX := (box.Left + box.Right) / 2
	midY := (box.Top + box.Bottom) / 2
	switch a {
	case TopLeft:
		return dmath.NewVec2(box.Left, box.Top)
	case Top:
		return dmath.NewVec2(midX, box.Top)
	case TopRight:
		return dmath.NewVec2(box.Right, box.Top)
	case Right:
		return dmath.NewVec2(box.Right, midY)
	case BottomRight:
		return dmath.NewVec2(box.Right, box.Bottom)
	case Bottom:
		return dmath.NewVec2(midX, box.Bottom)
	case BottomLeft:
		return dmath.NewVec2(box.Left, box.Bottom)
	case Left:
		return dmath.NewVec2(box.Left, midY)
	}
	return dmath.NewVec2(midX, midY)
}

// PushPosition is the top-left coordinate the cursor rides to: the anchor
// minus half the cursor's own size.
func PushPosition(box surface.Box, a Anchor, half dmath.Vec2) dmath.Vec2 {
	return AnchorPoint(box, a).Sub(half)
}

// Rounded reports whether v rounds to the zero vector.
func Rounded(v dmath.Vec2) bool {
	return math.Round(v.X) == 0 && math.Round(v.Y) == 0
}

// Puller drives the displacement of a target toward the tracked point.
type Puller struct {
	cfg  Config
	disp timeline.Vec
}

func NewPuller(cfg Config) *Puller {
	return &Puller{
		cfg:  cfg,
		disp: timeline.NewVec(dmath.Vec2{}, cfg.Duration, cfg.Easing),
	}
}

// Update retargets toward point-center while active, toward rest otherwise,
// and returns the displacement for this frame.
func (p *Puller) Update(dt float64, active bool, point, center dmath.Vec2) dmath.Vec2 {
	final := dmath.Vec2{}
	if active {
		final = point.Sub(center)
	}
	return p.disp.Step(timeline.Clamp(dt, p.cfg.Duration), final)
}

func (p *Puller) Displacement() dmath.Vec2 {
	return p.disp.Current()
}

func (p *Puller) Commit() {
	p.disp.Commit()
}

// AtRest reports whether the displacement has returned to zero.
func (p *Puller) AtRest() bool {
	return Rounded(p.disp.Current()) && Rounded(p.disp.Final())
}

// Pusher drives the cursor's displacement toward an anchor on the target.
type Pusher struct {
	cfg      Config
	disp     timeline.Vec
	engaged  bool
	released bool
}

func NewPusher(cfg Config) *Pusher {
	return &Pusher{
		cfg:      cfg,
		disp:     timeline.NewVec(dmath.Vec2{}, cfg.Duration, cfg.Easing),
		released: true,
	}
}

// Engage switches to a new target configuration without losing the
// displacement already reached.
func (p *Pusher) Engage(cfg Config) {
	current := p.disp.Current()
	p.cfg = cfg
	p.disp = timeline.NewVec(current, cfg.Duration, cfg.Easing)
	p.engaged = true
	p.released = false
}

// Disengage starts the return to rest.
func (p *Pusher) Disengage() {
	p.engaged = false
}

func (p *Pusher) Engaged() bool {
	return p.engaged
}

// Update retargets the displacement. While engaged the cursor top-left
// (follow) is pulled toward PushPosition; otherwise toward zero. Once the
// rounded displacement is zero the pusher reports Released.
func (p *Pusher) Update(dt float64, box surface.Box, half, follow dmath.Vec2) dmath.Vec2 {
	final := dmath.Vec2{}
	if p.engaged {
		final = PushPosition(box, p.cfg.Anchor, half).Sub(follow)
	}
	d := p.disp.Step(timeline.Clamp(dt, p.cfg.Duration), final)
	if !p.engaged && Rounded(d) {
		p.disp.Snap(dmath.Vec2{})
		p.released = true
		return dmath.Vec2{}
	}
	return d
}

func (p *Pusher) Displacement() dmath.Vec2 {
	return p.disp.Current()
}

func (p *Pusher) Commit() {
	p.disp.Commit()
}

// Released reports whether magnetism has fully let go of the cursor.
func (p *Pusher) Released() bool {
	return p.released
}
