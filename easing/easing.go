// Package easing provides the progress curves used by timelines.
//
// Every curve maps normalized time t in [0, 1] to normalized progress. The
// monotonic members return exactly 0 at t=0 and exactly 1 at t=1; the Back
// and Elastic families overshoot in between.
package easing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Func maps normalized time to normalized progress.
type Func func(t float64) float64

var ErrUnknown = errors.New("easing: unknown curve")

// FromTween adapts a gween tween function to a normalized curve.
func FromTween(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var (
	Linear = FromTween(ease.Linear)

	InQuad    = FromTween(ease.InQuad)
	OutQuad   = FromTween(ease.OutQuad)
	InOutQuad = FromTween(ease.InOutQuad)

	InCubic    = FromTween(ease.InCubic)
	OutCubic   = FromTween(ease.OutCubic)
	InOutCubic = FromTween(ease.InOutCubic)

	InQuart    = FromTween(ease.InQuart)
	OutQuart   = FromTween(ease.OutQuart)
	InOutQuart = FromTween(ease.InOutQuart)

	InQuint    = FromTween(ease.InQuint)
	OutQuint   = FromTween(ease.OutQuint)
	InOutQuint = FromTween(ease.InOutQuint)

	InSine    = FromTween(ease.InSine)
	OutSine   = FromTween(ease.OutSine)
	InOutSine = FromTween(ease.InOutSine)

	InExpo    = FromTween(ease.InExpo)
	OutExpo   = FromTween(ease.OutExpo)
	InOutExpo = FromTween(ease.InOutExpo)

	InCirc    = FromTween(ease.InCirc)
	OutCirc   = FromTween(ease.OutCirc)
	InOutCirc = FromTween(ease.InOutCirc)

	InBack    = FromTween(ease.InBack)
	OutBack   = FromTween(ease.OutBack)
	InOutBack = FromTween(ease.InOutBack)

	InElastic  = FromTween(ease.InElastic)
	OutElastic = FromTween(ease.OutElastic)

	InBounce  = FromTween(ease.InBounce)
	OutBounce = FromTween(ease.OutBounce)
)

var byName = map[string]Func{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"in-cubic":     InCubic,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"in-quart":     InQuart,
	"out-quart":    OutQuart,
	"in-out-quart": InOutQuart,
	"in-quint":     InQuint,
	"out-quint":    OutQuint,
	"in-out-quint": InOutQuint,
	"in-sine":      InSine,
	"out-sine":     OutSine,
	"in-out-sine":  InOutSine,
	"in-expo":      InExpo,
	"out-expo":     OutExpo,
	"in-out-expo":  InOutExpo,
	"in-circ":      InCirc,
	"out-circ":     OutCirc,
	"in-out-circ":  InOutCirc,
	"in-back":      InBack,
	"out-back":     OutBack,
	"in-out-back":  InOutBack,
	"in-elastic":   InElastic,
	"out-elastic":  OutElastic,
	"in-bounce":    InBounce,
	"out-bounce":   OutBounce,
}

// ByName resolves a kebab-case curve name such as "out-cubic".
func ByName(name string) (Func, error) {
	fn, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return fn, nil
}

// Names returns every registered curve name, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounded reports whether the named curve stays within [0, 1].
func Bounded(name string) bool {
	switch name {
	case "in-back", "out-back", "in-out-back", "in-elastic", "out-elastic":
		return false
	}
	_, ok := byName[name]
	return ok
}

// Cycle returns the curve step places after name in Names order, wrapping
// around. An unknown name starts from the first curve.
func Cycle(name string, step int) string {
	names := Names()
	i := sort.SearchStrings(names, name)
	if i == len(names) || names[i] != name {
		i = 0
		if step > 0 {
			step--
		}
	}
	n := len(names)
	return names[((i+step)%n+n)%n]
}

// Describe labels a curve name for display, marking curves that overshoot.
func Describe(name string) string {
	if _, ok := byName[name]; !ok {
		return name + " (unknown)"
	}
	if !Bounded(name) {
		return name + " (overshoot)"
	}
	return name
}
