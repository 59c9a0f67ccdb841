package surface

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestExpandedBox(t *testing.T) {
	box := Box{Left: 100, Right: 200, Top: 100, Bottom: 200, Width: 100, Height: 100}
	got := box.Expand(dmath.NewVec2(10, 10))

	want := Box{Left: 90, Right: 210, Top: 90, Bottom: 210, Width: 120, Height: 120}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if !got.Contains(dmath.NewVec2(95, 95)) {
		t.Error("expected (95, 95) inside expanded box")
	}
	if got.Contains(dmath.NewVec2(85, 85)) {
		t.Error("expected (85, 85) outside expanded box")
	}
}

func TestBoxHelpers(t *testing.T) {
	b := NewBox(10, 20, 30, 40)
	if b.Right != 40 || b.Bottom != 60 {
		t.Errorf("expected right 40 bottom 60, got %f %f", b.Right, b.Bottom)
	}
	if c := b.Center(); c.X != 25 || c.Y != 40 {
		t.Errorf("expected center (25, 40), got (%f, %f)", c.X, c.Y)
	}
	corners := b.Corners(1)
	if corners[0] != dmath.NewVec2(11, 21) || corners[2] != dmath.NewVec2(39, 59) {
		t.Errorf("unexpected corners %+v", corners)
	}
	if !b.Contains(dmath.NewVec2(40, 60)) {
		t.Error("edges are inside")
	}
}

func TestMergeTransform(t *testing.T) {
	testCases := []struct {
		name      string
		transform string
		fn, arg   string
		want      string
	}{
		{"empty", "", "scale", "1.2", "scale(1.2)"},
		{"append", "rotate(4deg)", "scale", "1.2", "rotate(4deg) scale(1.2)"},
		{"replace", "translateX(3px) scale(1) rotate(4deg)", "scale", "2", "translateX(3px) scale(2) rotate(4deg)"},
		{"prefix name is not a match", "translateX(3px)", "translate", "1px, 2px", "translateX(3px) translate(1px, 2px)"},
		{"suffix name is not a match", "myscale(3)", "scale", "2", "myscale(3) scale(2)"},
		{"replace multi arg", "translate3d(1px, 2px, 0px)", "translate3d", "5px, 6px, 0px", "translate3d(5px, 6px, 0px)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MergeTransform(tc.transform, tc.fn, tc.arg); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseTransform(t *testing.T) {
	funcs := ParseTransform("translate3d(12.5px, -3px, 0px) scale(1.1)")
	if len(funcs) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(funcs))
	}
	if funcs[0].Name != "translate3d" || len(funcs[0].Args) != 3 {
		t.Errorf("unexpected first function %+v", funcs[0])
	}
	x, ok := Number(funcs[0].Args[0])
	if !ok || x != 12.5 {
		t.Errorf("expected 12.5, got %f (%v)", x, ok)
	}
	y, ok := Number(funcs[0].Args[1])
	if !ok || y != -3 {
		t.Errorf("expected -3, got %f (%v)", y, ok)
	}
	s, ok := Number(funcs[1].Args[0])
	if !ok || s != 1.1 {
		t.Errorf("expected 1.1, got %f (%v)", s, ok)
	}
	if _, ok := Number("px"); ok {
		t.Error("expected unit-only argument to fail")
	}
}
