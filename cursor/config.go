package cursor

import (
	"github.com/automoto/lodestone/clock"
	"github.com/automoto/lodestone/easing"
	"github.com/automoto/lodestone/property"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/target"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	DefaultFrameID  = "cursor-frame"
	DefaultDuration = 1000.0
)

// Clock is the frame source the cursor registers itself with.
type Clock interface {
	Add(cb clock.Callback, id string, priority int)
	Remove(id string) bool
}

// Config enumerates every option of the cursor. Start from DefaultConfig and
// override what you need; New fills zero values of Easing and FrameID with
// their defaults.
type Config struct {
	// Element is the rendered cursor. surface.None runs the cursor headless.
	Element surface.Element

	// Easing and Duration (ms) shape the follow motion. A non-positive
	// duration makes the cursor snap to the pointer.
	Easing   easing.Func
	Duration float64

	InitialPosition dmath.Vec2

	// HiddenUntilFirstInteraction keeps the cursor at opacity 0 until the
	// first pointer sample.
	HiddenUntilFirstInteraction bool
	// DetectTouch accepts Touch samples as pointer input.
	DetectTouch bool
	// EmitGlobal broadcasts target events to subscribers in addition to the
	// per-target callbacks.
	EmitGlobal bool
	// AutoStartPositionUpdate writes the cursor transform from the first frame.
	AutoStartPositionUpdate bool
	// RenderByPixel rounds the rendered position to whole pixels.
	RenderByPixel bool
	// Precision is the number of decimals in the rendered position. nil means
	// property.DefaultPrecision.
	Precision *int

	Props   []property.Descriptor
	Targets []target.Descriptor

	// Clock drives the cursor. When nil the cursor creates and starts its own
	// loop, available through (*Cursor).Clock.
	Clock    Clock
	FrameID  string
	Priority int
}

func DefaultConfig() Config {
	return Config{
		Easing:                  easing.OutCubic,
		Duration:                DefaultDuration,
		EmitGlobal:              true,
		AutoStartPositionUpdate: true,
		FrameID:                 DefaultFrameID,
	}
}

func (c Config) withDefaults() Config {
	if c.Easing == nil {
		c.Easing = easing.OutCubic
	}
	if c.FrameID == "" {
		c.FrameID = DefaultFrameID
	}
	return c
}
