package config

import (
	"fmt"

	"github.com/automoto/lodestone/cursor"
	"github.com/automoto/lodestone/easing"
	"github.com/automoto/lodestone/property"
	"github.com/automoto/lodestone/surface"
)

// CursorConfig is the YAML form of cursor.Config.
type CursorConfig struct {
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`

	Easing   string  `yaml:"easing"`
	Duration float64 `yaml:"duration"` // ms

	HiddenUntilFirstInteraction bool `yaml:"hidden_until_first_interaction"`
	DetectTouch                 bool `yaml:"detect_touch"`
	EmitGlobal                  bool `yaml:"emit_global"`
	AutoStartPositionUpdate     bool `yaml:"auto_start_position_update"`
	RenderByPixel               bool `yaml:"render_by_pixel"`
	Precision                   *int `yaml:"precision"`

	Props []PropertyConfig `yaml:"props"`
}

// PropertyConfig describes one animated property. Target names a scene
// element; empty or "cursor" means the cursor element itself.
type PropertyConfig struct {
	ID            string  `yaml:"id"`
	Key           string  `yaml:"key"`
	Kind          string  `yaml:"kind"`
	Target        string  `yaml:"target"`
	Suffix        string  `yaml:"suffix"`
	Easing        string  `yaml:"easing"`
	Duration      float64 `yaml:"duration"`
	Initial       float64 `yaml:"initial"`
	Precision     *int    `yaml:"precision"`
	RenderByPixel bool    `yaml:"render_by_pixel"`
	Paused        bool    `yaml:"paused"`
}

// ToCursor resolves names into a cursor.Config for the element el. lookup
// maps property target names to elements; it may be nil.
func (c CursorConfig) ToCursor(el surface.Element, lookup func(name string) (surface.Element, bool)) (cursor.Config, error) {
	out := cursor.DefaultConfig()
	out.Element = el
	out.Duration = c.Duration
	out.HiddenUntilFirstInteraction = c.HiddenUntilFirstInteraction
	out.DetectTouch = c.DetectTouch
	out.EmitGlobal = c.EmitGlobal
	out.AutoStartPositionUpdate = c.AutoStartPositionUpdate
	out.RenderByPixel = c.RenderByPixel
	out.Precision = c.Precision

	if c.Easing != "" {
		fn, err := easing.ByName(c.Easing)
		if err != nil {
			return cursor.Config{}, fmt.Errorf("config: cursor easing: %w", err)
		}
		out.Easing = fn
	}

	for _, p := range c.Props {
		d, err := p.descriptor(el, lookup)
		if err != nil {
			return cursor.Config{}, err
		}
		out.Props = append(out.Props, d)
	}
	return out, nil
}

func (p PropertyConfig) descriptor(cursorEl surface.Element, lookup func(string) (surface.Element, bool)) (property.Descriptor, error) {
	kind, err := property.ParseKind(p.Kind)
	if err != nil {
		return property.Descriptor{}, fmt.Errorf("config: property %s: %w", p.ID, err)
	}
	fn := easing.OutCubic
	if p.Easing != "" {
		if fn, err = easing.ByName(p.Easing); err != nil {
			return property.Descriptor{}, fmt.Errorf("config: property %s: %w", p.ID, err)
		}
	}

	el := cursorEl
	if p.Target != "" && p.Target != "cursor" {
		found := false
		if lookup != nil {
			el, found = lookup(p.Target)
		}
		if !found {
			return property.Descriptor{}, fmt.Errorf("config: property %s: unknown target %q", p.ID, p.Target)
		}
	}

	return property.Descriptor{
		ID:            p.ID,
		Key:           p.Key,
		Kind:          kind,
		Target:        el,
		Suffix:        property.Suffix(p.Suffix),
		Easing:        fn,
		Duration:      p.Duration,
		Initial:       p.Initial,
		Precision:     p.Precision,
		RenderByPixel: p.RenderByPixel,
		Paused:        p.Paused,
	}, nil
}
