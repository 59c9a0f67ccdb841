package property

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/automoto/lodestone/easing"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/timeline"
	"gonum.org/v1/gonum/floats/scalar"
)

// Kind selects how a property is written to its target.
type Kind int

const (
	Typeless Kind = iota
	Transform
	Style
	Attribute
)

func (k Kind) String() string {
	switch k {
	case Transform:
		return "transform"
	case Style:
		return "style"
	case Attribute:
		return "attribute"
	default:
		return "typeless"
	}
}

// ParseKind maps a config name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "typeless":
		return Typeless, nil
	case "transform":
		return Transform, nil
	case "style":
		return Style, nil
	case "attribute":
		return Attribute, nil
	}
	return Typeless, fmt.Errorf("property: unknown kind %q", s)
}

// Suffix is the unit appended to a rendered value.
type Suffix string

const (
	NoSuffix   Suffix = ""
	Pixel      Suffix = "px"
	Percentage Suffix = "%"
	Degree     Suffix = "deg"
	Seconds    Suffix = "s"
)

const DefaultPrecision = 4

// Decimals returns a Precision for descriptors. A nil Precision means
// DefaultPrecision; Decimals(0) rounds to integers.
func Decimals(n int) *int {
	return &n
}

var ErrMissingKey = errors.New("property: key is required for rendered kinds")

type Descriptor struct {
	ID            string
	Key           string
	Kind          Kind
	Target        surface.Element
	Suffix        Suffix
	Easing        easing.Func
	Duration      float64
	Initial       float64
	Precision     *int
	RenderByPixel bool
	// Paused starts the property without render output.
	Paused bool
}

func (d Descriptor) Validate() error {
	if d.Kind != Typeless && d.Key == "" {
		return fmt.Errorf("%w (id %q, kind %s)", ErrMissingKey, d.ID, d.Kind)
	}
	return nil
}

// Property is one named animated value.
type Property struct {
	ID            string
	Key           string
	Kind          Kind
	Suffix        Suffix
	Precision     int
	RenderByPixel bool

	target   surface.Element
	timeline timeline.Timeline
	value    float64
	playing  bool
	removed  bool
	writer   writer
	now      func() float64
}

func newProperty(d Descriptor, now func() float64) *Property {
	p := &Property{
		ID:            d.ID,
		Key:           d.Key,
		Kind:          d.Kind,
		Suffix:        d.Suffix,
		Precision:     DefaultPrecision,
		RenderByPixel: d.RenderByPixel,
		target:        d.Target,
		timeline:      timeline.New(d.Initial, d.Duration, d.Easing),
		value:         d.Initial,
		playing:       !d.Paused,
		writer:        writerFor(d.Kind),
		now:           now,
	}
	if d.Precision != nil {
		p.Precision = *d.Precision
	}
	p.timeline.Start = now()
	return p
}

// Value returns the last committed value.
func (p *Property) Value() float64 {
	return p.value
}

// SetValue retargets the property. Motion continues from the current value.
func (p *Property) SetValue(v float64) {
	p.timeline.Retarget(v, p.now())
}

// Current is the value computed by the last Frame, before commit.
func (p *Property) Current() float64 {
	return p.timeline.Current
}

func (p *Property) Final() float64 {
	return p.timeline.Final
}

// Elapsed is the time in ms since the last retarget, clamped to the duration.
func (p *Property) Elapsed() float64 {
	return p.timeline.Elapsed(p.now())
}

// Settled reports whether the property is within half a rendered step of its
// final value.
func (p *Property) Settled() bool {
	return p.timeline.Settled(math.Pow(10, -float64(p.Precision)) / 2)
}

func (p *Property) Timeline() timeline.Timeline {
	return p.timeline
}

func (p *Property) Target() surface.Element {
	return p.target
}

// SetTarget binds the property to el. surface.None makes it headless.
func (p *Property) SetTarget(el surface.Element) {
	p.target = el
}

func (p *Property) Playing() bool {
	return p.playing
}

// Play resumes render output toward the last committed value, so the
// property settles where it was paused.
func (p *Property) Play() {
	p.PlayTo(p.timeline.Initial)
}

// PlayTo resumes render output and retargets toward v.
func (p *Property) PlayTo(v float64) {
	p.playing = true
	p.timeline.Retarget(v, p.now())
}

// Pause freezes render output. Frame bookkeeping keeps running.
func (p *Property) Pause() {
	p.playing = false
}

func (p *Property) frame(dt float64) {
	p.timeline.Step(timeline.Clamp(dt, p.timeline.Duration), p.timeline.Final)
}

func (p *Property) render(sink surface.Sink) {
	if !p.playing || p.writer == nil || sink == nil {
		return
	}
	if p.target == surface.None || !sink.Has(p.target) {
		return
	}
	p.writer.write(sink, p.target, p.Key, p.Format(p.timeline.Current))
}

func (p *Property) postRender() {
	p.timeline.Commit()
	p.value = p.timeline.Current
}

// Format renders v with the property's rounding and suffix.
func (p *Property) Format(v float64) string {
	return FormatValue(v, p.Precision, p.RenderByPixel) + string(p.Suffix)
}

// FormatValue rounds v to precision decimals, or to an integer when byPixel
// is set, and prints it without trailing zeros.
func FormatValue(v float64, precision int, byPixel bool) string {
	if byPixel {
		v = math.Round(v)
	} else if precision >= 0 {
		v = scalar.Round(v, precision)
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
