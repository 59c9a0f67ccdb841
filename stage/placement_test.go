package stage

import (
	"testing"

	"github.com/automoto/lodestone/components"
	"github.com/automoto/lodestone/surface"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPlace(t *testing.T) {
	box := surface.NewBox(0, 0, 20, 20)
	tests := []struct {
		name string
		data components.ElementData
		want Placement
	}{
		{
			name: "layout box",
			data: components.ElementData{},
			want: Placement{X: 0, Y: 0, W: 20, H: 20, Opacity: 1},
		},
		{
			name: "cursor translate",
			data: components.ElementData{Transform: "translate3d(140px, 130.5px, 0px)"},
			want: Placement{X: 140, Y: 130.5, W: 20, H: 20, Opacity: 1},
		},
		{
			name: "scale around center",
			data: components.ElementData{Transform: "translate3d(10px, 10px, 0px) scale(1.5)"},
			want: Placement{X: 5, Y: 5, W: 30, H: 30, Opacity: 1},
		},
		{
			name: "pull and rotate",
			data: components.ElementData{Transform: "rotate(4deg) translate(-3px, 2px)"},
			want: Placement{X: -3, Y: 2, W: 20, H: 20, Opacity: 1},
		},
		{
			name: "opacity styles",
			data: components.ElementData{Styles: map[string]string{"opacity": "0.5", "fill-opacity": "0.5"}},
			want: Placement{W: 20, H: 20, Opacity: 0.25},
		},
		{
			name: "hidden",
			data: components.ElementData{Styles: map[string]string{"opacity": "0"}},
			want: Placement{W: 20, H: 20, Opacity: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(box, &tt.data)
			for _, pair := range [][2]float64{
				{got.X, tt.want.X}, {got.Y, tt.want.Y},
				{got.W, tt.want.W}, {got.H, tt.want.H},
				{got.Opacity, tt.want.Opacity},
			} {
				if !scalar.EqualWithinAbs(pair[0], pair[1], 1e-9) {
					t.Errorf("expected %+v, got %+v", tt.want, got)
					return
				}
			}
		})
	}
}
