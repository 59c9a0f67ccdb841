package stage

import (
	"strconv"

	"github.com/automoto/lodestone/components"
	"github.com/automoto/lodestone/surface"
)

// Placement is where an element is drawn once its sink state is applied.
type Placement struct {
	X, Y    float64
	W, H    float64
	Opacity float64
}

// Place applies the translate, translate3d and scale functions of the
// element's transform to its layout box, scaling around the center. Opacity
// multiplies the "opacity" and "fill-opacity" styles.
func Place(box surface.Box, data *components.ElementData) Placement {
	var dx, dy float64
	sx, sy := 1.0, 1.0
	for _, fn := range surface.ParseTransform(data.Transform) {
		switch fn.Name {
		case "translate", "translate3d":
			dx += arg(fn.Args, 0, 0)
			dy += arg(fn.Args, 1, 0)
		case "scale":
			sx = arg(fn.Args, 0, 1)
			sy = arg(fn.Args, 1, sx)
		}
	}

	w, h := box.Width*sx, box.Height*sy
	return Placement{
		X:       box.Left + dx + (box.Width-w)/2,
		Y:       box.Top + dy + (box.Height-h)/2,
		W:       w,
		H:       h,
		Opacity: clamp01(style(data.Styles, "opacity") * style(data.Styles, "fill-opacity")),
	}
}

func arg(args []string, i int, fallback float64) float64 {
	if i >= len(args) {
		return fallback
	}
	v, ok := surface.Number(args[i])
	if !ok {
		return fallback
	}
	return v
}

func style(styles map[string]string, name string) float64 {
	s, ok := styles[name]
	if !ok {
		return 1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
