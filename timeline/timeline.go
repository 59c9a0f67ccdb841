// Package timeline holds the interpolation state for one animated scalar
// (Timeline) or one animated 2D displacement (Vec).
//
// A timeline is driven by the external per-tick delta: every Step blends
// Initial toward Final by the eased fraction delta/Duration, and Commit moves
// Initial to Current once per frame. Retargeting Final between frames
// therefore continues from wherever the previous frame ended instead of
// restarting the curve.
package timeline

import (
	"math"

	"github.com/automoto/lodestone/easing"
	dmath "github.com/yohamta/donburi/features/math"
)

type Timeline struct {
	// Start is the clock time of the last Retarget, in milliseconds.
	Start    float64
	Duration float64
	Initial  float64
	Current  float64
	Final    float64
	Easing   easing.Func
}

// New returns a timeline resting at seed. A nil fn means linear.
func New(seed, duration float64, fn easing.Func) Timeline {
	if fn == nil {
		fn = easing.Linear
	}
	return Timeline{
		Duration: duration,
		Initial:  seed,
		Current:  seed,
		Final:    seed,
		Easing:   fn,
	}
}

// Step moves Current toward final using delta milliseconds of progress and
// returns the new Current.
func (tl *Timeline) Step(delta, final float64) float64 {
	tl.Final = final
	if tl.Duration <= 0 || math.IsNaN(tl.Duration) {
		tl.Current = final
		return tl.Current
	}
	if delta >= tl.Duration {
		tl.Current = final
		return tl.Current
	}
	if delta <= 0 || math.IsNaN(delta) {
		tl.Current = tl.Initial
		return tl.Current
	}

	fn := tl.Easing
	if fn == nil {
		fn = easing.Linear
	}
	progress := fn(delta / tl.Duration)
	tl.Current = tl.Initial + progress*(final-tl.Initial)
	return tl.Current
}

// Commit makes the current value the starting point of the next frame.
func (tl *Timeline) Commit() {
	tl.Initial = tl.Current
}

// Retarget points the timeline at a new final value without discarding the
// value already reached.
func (tl *Timeline) Retarget(final, now float64) {
	tl.Start = now
	tl.Initial = tl.Current
	tl.Final = final
}

// Snap jumps straight to v.
func (tl *Timeline) Snap(v float64) {
	tl.Initial = v
	tl.Current = v
	tl.Final = v
}

// Elapsed returns the time since the last Retarget, clamped to [0, Duration].
func (tl *Timeline) Elapsed(now float64) float64 {
	return Clamp(now-tl.Start, tl.Duration)
}

// Settled reports whether Current is within eps of Final.
func (tl *Timeline) Settled(eps float64) bool {
	return math.Abs(tl.Final-tl.Current) <= eps
}

// Clamp limits delta to [0, duration]. Non-positive durations clamp to 0.
func Clamp(delta, duration float64) float64 {
	if math.IsNaN(delta) || delta < 0 {
		return 0
	}
	if duration <= 0 {
		return 0
	}
	return math.Min(delta, duration)
}

// Vec animates an X/Y pair with shared duration and easing.
type Vec struct {
	X Timeline
	Y Timeline
}

func NewVec(seed dmath.Vec2, duration float64, fn easing.Func) Vec {
	return Vec{
		X: New(seed.X, duration, fn),
		Y: New(seed.Y, duration, fn),
	}
}

func (v *Vec) Step(delta float64, final dmath.Vec2) dmath.Vec2 {
	return dmath.NewVec2(v.X.Step(delta, final.X), v.Y.Step(delta, final.Y))
}

func (v *Vec) Commit() {
	v.X.Commit()
	v.Y.Commit()
}

func (v *Vec) Retarget(final dmath.Vec2, now float64) {
	v.X.Retarget(final.X, now)
	v.Y.Retarget(final.Y, now)
}

func (v *Vec) Snap(p dmath.Vec2) {
	v.X.Snap(p.X)
	v.Y.Snap(p.Y)
}

func (v *Vec) Current() dmath.Vec2 {
	return dmath.NewVec2(v.X.Current, v.Y.Current)
}

func (v *Vec) Final() dmath.Vec2 {
	return dmath.NewVec2(v.X.Final, v.Y.Final)
}
