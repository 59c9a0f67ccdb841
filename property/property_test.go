package property

import (
	"errors"
	"testing"

	"github.com/automoto/lodestone/easing"
	"github.com/automoto/lodestone/surface"
)

type fakeSink struct {
	elements   map[surface.Element]bool
	transforms map[surface.Element]string
	styles     map[surface.Element]map[string]string
	attrs      map[surface.Element]map[string]string
	writes     int
}

func newFakeSink(els ...surface.Element) *fakeSink {
	s := &fakeSink{
		elements:   map[surface.Element]bool{},
		transforms: map[surface.Element]string{},
		styles:     map[surface.Element]map[string]string{},
		attrs:      map[surface.Element]map[string]string{},
	}
	for _, el := range els {
		s.elements[el] = true
		s.styles[el] = map[string]string{}
		s.attrs[el] = map[string]string{}
	}
	return s
}

func (s *fakeSink) Has(el surface.Element) bool { return s.elements[el] }
func (s *fakeSink) Transform(el surface.Element) string { return s.transforms[el] }
func (s *fakeSink) SetTransform(el surface.Element, v string) { s.writes++; s.transforms[el] = v }
func (s *fakeSink) SetStyle(el surface.Element, name, v string) {
	s.writes++
	s.styles[el][name] = v
}
func (s *fakeSink) SetAttribute(el surface.Element, name, v string) {
	s.writes++
	s.attrs[el][name] = v
}

func tick(e *Engine, dt float64) {
	e.Frame(dt)
	e.Render(dt)
	e.PostRender(dt)
}

func TestLinearScenario(t *testing.T) {
	e := NewEngine(newFakeSink())
	p := e.Add(Descriptor{ID: "x", Easing: easing.Linear, Duration: 1000, Initial: 0})
	p.SetValue(100)

	tick(e, 500)
	if p.Value() != 50 {
		t.Errorf("expected 50 after first half, got %f", p.Value())
	}
	tick(e, 500)
	if p.Value() != 75 {
		t.Errorf("expected 75 continuing from 50, got %f", p.Value())
	}
}

func TestValueIsLastCommitted(t *testing.T) {
	e := NewEngine(newFakeSink())
	p := e.Add(Descriptor{ID: "x", Easing: easing.Linear, Duration: 1000})
	p.SetValue(100)

	e.Frame(500)
	if p.Value() != 0 {
		t.Errorf("expected value to stay at 0 until post render, got %f", p.Value())
	}
	if p.Current() != 50 {
		t.Errorf("expected current 50, got %f", p.Current())
	}
	e.PostRender(500)
	if p.Value() != 50 {
		t.Errorf("expected committed 50, got %f", p.Value())
	}
}

func TestRetargetMidFlight(t *testing.T) {
	e := NewEngine(newFakeSink())
	p := e.Add(Descriptor{ID: "x", Easing: easing.Linear, Duration: 1000})
	p.SetValue(100)
	tick(e, 500)
	p.SetValue(200)
	tick(e, 500)

	if p.Value() <= 100 || p.Value() >= 200 {
		t.Errorf("expected value strictly between 100 and 200, got %f", p.Value())
	}
	if tl := p.Timeline(); tl.Start != 500 {
		t.Errorf("expected retarget start at engine time 500, got %f", tl.Start)
	}
}

func TestRenderKinds(t *testing.T) {
	const el surface.Element = 7
	sink := newFakeSink(el)
	sink.transforms[el] = "rotate(10deg) scale(1)"
	e := NewEngine(sink)

	e.Add(Descriptor{ID: "s", Key: "scale", Kind: Transform, Target: el, Duration: 0, Initial: 1.5})
	e.Add(Descriptor{ID: "o", Key: "opacity", Kind: Style, Target: el, Duration: 0, Initial: 0.25})
	e.Add(Descriptor{ID: "r", Key: "r", Kind: Attribute, Target: el, Suffix: Pixel, Duration: 0, Initial: 12})
	e.Add(Descriptor{ID: "t", Kind: Typeless, Target: el, Initial: 3})

	tick(e, 16)

	if got := sink.transforms[el]; got != "rotate(10deg) scale(1.5)" {
		t.Errorf("expected surgical transform merge, got %q", got)
	}
	if got := sink.styles[el]["opacity"]; got != "0.25" {
		t.Errorf("expected opacity 0.25, got %q", got)
	}
	if got := sink.attrs[el]["r"]; got != "12px" {
		t.Errorf("expected r=12px, got %q", got)
	}
	if sink.writes != 3 {
		t.Errorf("expected typeless property to write nothing (3 writes total), got %d", sink.writes)
	}
}

func TestMissingTargetIsNoop(t *testing.T) {
	sink := newFakeSink()
	e := NewEngine(sink)
	p := e.Add(Descriptor{ID: "w", Key: "width", Kind: Style, Target: 99, Suffix: Pixel, Initial: 10})
	headless := e.Add(Descriptor{ID: "h", Key: "height", Kind: Style, Initial: 10})

	tick(e, 16)

	if sink.writes != 0 {
		t.Errorf("expected no writes for missing targets, got %d", sink.writes)
	}
	if p.Value() != 10 || headless.Value() != 10 {
		t.Error("expected bookkeeping to continue without a target")
	}
}

func TestPauseFreezesRenderOnly(t *testing.T) {
	const el surface.Element = 1
	sink := newFakeSink(el)
	e := NewEngine(sink)
	p := e.Add(Descriptor{ID: "w", Key: "width", Kind: Style, Target: el, Suffix: Pixel,
		Easing: easing.Linear, Duration: 1000})

	p.Pause()
	p.SetValue(100)
	tick(e, 500)

	if sink.writes != 0 {
		t.Errorf("expected no render while paused, got %d writes", sink.writes)
	}
	if p.Value() != 50 {
		t.Errorf("expected frame bookkeeping to continue while paused, got %f", p.Value())
	}

	p.PlayTo(0)
	tick(e, 500)
	if !p.Playing() {
		t.Fatal("expected property to play again")
	}
	if got := sink.styles[el]["width"]; got != "25px" {
		t.Errorf("expected 25px after resuming toward 0, got %q", got)
	}
}

func TestPlayResumesTowardLastCommitted(t *testing.T) {
	e := NewEngine(newFakeSink())
	p := e.Add(Descriptor{ID: "x", Easing: easing.Linear, Duration: 1000})
	p.SetValue(100)
	tick(e, 500)

	p.Pause()
	p.Play()
	if !p.Playing() {
		t.Fatal("expected property to play again")
	}
	if p.Final() != 50 {
		t.Errorf("expected Play to settle on the committed 50, got final %f", p.Final())
	}

	tick(e, 500)
	if p.Value() != 50 {
		t.Errorf("expected value to stay at 50, got %f", p.Value())
	}
}

func TestElapsedAndSettled(t *testing.T) {
	e := NewEngine(newFakeSink())
	p := e.Add(Descriptor{ID: "x", Easing: easing.Linear, Duration: 1000})
	tick(e, 100)
	p.SetValue(100)

	tick(e, 250)
	if got := p.Elapsed(); got != 250 {
		t.Errorf("expected 250ms since retarget, got %f", got)
	}
	if p.Settled() {
		t.Error("expected property still moving")
	}

	tick(e, 1000)
	if got := p.Elapsed(); got != 1000 {
		t.Errorf("expected elapsed clamped to 1000, got %f", got)
	}
	if !p.Settled() {
		t.Errorf("expected settled at 100, got %f", p.Value())
	}
}

func TestPrecision(t *testing.T) {
	e := NewEngine(newFakeSink())
	def := e.Add(Descriptor{ID: "default"})
	whole := e.Add(Descriptor{ID: "whole", Precision: Decimals(0)})
	two := e.Add(Descriptor{ID: "two", Precision: Decimals(2)})

	testCases := []struct {
		p    *Property
		want string
	}{
		{def, "1.2346"},
		{whole, "1"},
		{two, "1.23"},
	}
	for _, tc := range testCases {
		if got := tc.p.Format(1.23456); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.p.ID, tc.want, got)
		}
	}
}

func TestFormatValue(t *testing.T) {
	testCases := []struct {
		v         float64
		precision int
		byPixel   bool
		want      string
	}{
		{12.345678, 4, false, "12.3457"},
		{12.5, 2, false, "12.5"},
		{12.5, 4, true, "13"},
		{-0.00001, 2, false, "0"},
		{100, 4, false, "100"},
	}
	for _, tc := range testCases {
		if got := FormatValue(tc.v, tc.precision, tc.byPixel); got != tc.want {
			t.Errorf("FormatValue(%f, %d, %v): expected %q, got %q", tc.v, tc.precision, tc.byPixel, tc.want, got)
		}
	}
}

func TestRemoveIdempotent(t *testing.T) {
	e := NewEngine(newFakeSink())
	e.Add(Descriptor{ID: "a"})
	if !e.Remove("a") {
		t.Error("expected first remove to report true")
	}
	if e.Remove("a") {
		t.Error("expected second remove to report false")
	}
	if e.Remove("never") {
		t.Error("expected unknown id to report false")
	}
	if _, ok := e.Get("a"); ok {
		t.Error("expected removed property to be absent")
	}
}

func TestRemoveDuringFrameSkipsRemoved(t *testing.T) {
	e := NewEngine(newFakeSink())
	a := e.Add(Descriptor{ID: "a", Easing: easing.Linear, Duration: 1000})
	b := e.Add(Descriptor{ID: "b", Easing: easing.Linear, Duration: 1000})
	a.SetValue(100)
	b.SetValue(100)

	for _, p := range e.props {
		if p.ID == "a" {
			e.Remove("b")
		}
		if p.removed {
			continue
		}
		p.frame(500)
	}

	if b.Current() != 0 {
		t.Errorf("expected removed property to be skipped, got current %f", b.Current())
	}
	if a.Current() != 50 {
		t.Errorf("expected remaining property to advance, got %f", a.Current())
	}
	if e.Len() != 1 {
		t.Errorf("expected 1 property left, got %d", e.Len())
	}
}

func TestDuplicateIDLastWins(t *testing.T) {
	e := NewEngine(newFakeSink())
	first := e.Add(Descriptor{ID: "dup", Initial: 1})
	second := e.Add(Descriptor{ID: "dup", Initial: 2})

	got, ok := e.Get("dup")
	if !ok || got != second {
		t.Error("expected the last registration to win")
	}
	if got == first {
		t.Error("expected first registration to be shadowed")
	}
	if e.Len() != 2 {
		t.Errorf("expected both properties tracked, got %d", e.Len())
	}
}

func TestValidate(t *testing.T) {
	if err := (Descriptor{ID: "x", Kind: Style}).Validate(); !errors.Is(err, ErrMissingKey) {
		t.Errorf("expected ErrMissingKey, got %v", err)
	}
	if err := (Descriptor{ID: "x"}).Validate(); err != nil {
		t.Errorf("typeless properties need no key, got %v", err)
	}
	if k, err := ParseKind("transform"); err != nil || k != Transform {
		t.Errorf("expected transform kind, got %v %v", k, err)
	}
	if _, err := ParseKind("shadow"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
