package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/lodestone/easing"
	"github.com/automoto/lodestone/magnet"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/target"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	elementsGroup = "Elements"
	targetsGroup  = "Targets"
)

// Load parses a TMX file into a Scene. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Scene, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scene := &Scene{
		Name:      SceneName(tmxPath),
		Path:      tmxPath,
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	byID := map[string]*Target{}
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case elementsGroup:
			for _, o := range og.Objects {
				scene.Elements = append(scene.Elements, Element{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					Z:      o.Properties.GetInt("z"),
					Color:  o.Properties.GetString("color"),
					Label:  o.Properties.GetString("label"),
					Parent: o.Properties.GetString("parent"),
					Target: o.Properties.GetString("target"),
					Round:  o.Ellipse != nil,
					Float:  o.Properties.GetFloat("float"),
				})
			}
		case targetsGroup:
			for _, o := range og.Objects {
				if o.Name == "" {
					continue
				}
				scene.Targets = append(scene.Targets, Target{
					ID:         o.Name,
					OffsetX:    o.Properties.GetFloat("offset_x"),
					OffsetY:    o.Properties.GetFloat("offset_y"),
					Visibility: o.Properties.GetString("visibility"),
					Magnet:     o.Properties.GetString("magnet"),
					Anchor:     o.Properties.GetString("anchor"),
					Easing:     o.Properties.GetString("easing"),
					Duration:   o.Properties.GetFloat("duration"),
				})
			}
		}
	}

	for i := range scene.Targets {
		byID[scene.Targets[i].ID] = &scene.Targets[i]
	}
	for _, el := range scene.Elements {
		if el.Target == "" {
			continue
		}
		t, ok := byID[el.Target]
		if !ok {
			return nil, fmt.Errorf("load TMX %s: element %q joins unknown target %q", tmxPath, el.Name, el.Target)
		}
		t.Elements = append(t.Elements, el.Name)
	}

	// Lower z draws first; ties keep file order.
	sort.SliceStable(scene.Elements, func(i, j int) bool {
		return scene.Elements[i].Z < scene.Elements[j].Z
	})

	return scene, nil
}

// SceneName is the file name of a TMX path without its extension.
func SceneName(tmxPath string) string {
	return strings.TrimSuffix(path.Base(tmxPath), ".tmx")
}

// LoadAll discovers all .tmx files in dir within fsys and returns the scenes
// sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]*Scene, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	scenes := make([]*Scene, 0, len(matches))
	for _, m := range matches {
		s, err := Load(fsys, m)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, s)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// Descriptor resolves the target's names into a registry descriptor for the
// given elements.
func (t Target) Descriptor(elements []surface.Element, onEvent target.Callback) (target.Descriptor, error) {
	vis, err := target.ParseVisibility(t.Visibility)
	if err != nil {
		return target.Descriptor{}, fmt.Errorf("target %s: %w", t.ID, err)
	}
	d := target.Descriptor{
		ID:         t.ID,
		Elements:   elements,
		Offset:     dmath.NewVec2(t.OffsetX, t.OffsetY),
		Visibility: vis,
		OnEvent:    onEvent,
	}
	if t.Magnet == "" {
		return d, nil
	}

	mode, err := magnet.ParseMode(t.Magnet)
	if err != nil {
		return target.Descriptor{}, fmt.Errorf("target %s: %w", t.ID, err)
	}
	anchor, err := magnet.ParseAnchor(t.Anchor)
	if err != nil {
		return target.Descriptor{}, fmt.Errorf("target %s: %w", t.ID, err)
	}
	fn := easing.OutCubic
	if t.Easing != "" {
		if fn, err = easing.ByName(t.Easing); err != nil {
			return target.Descriptor{}, fmt.Errorf("target %s: %w", t.ID, err)
		}
	}
	d.Magnetism = &magnet.Config{
		Mode:     mode,
		Easing:   fn,
		Duration: t.Duration,
		Anchor:   anchor,
	}
	return d, nil
}
