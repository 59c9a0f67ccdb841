package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/lodestone/magnet"
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/target"
)

const sceneTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Elements">
  <object id="1" name="card" x="100" y="100" width="100" height="100">
   <properties>
    <property name="z" type="int" value="2"/>
    <property name="color" value="#4361ee"/>
    <property name="label" value="push me"/>
    <property name="target" value="cards"/>
   </properties>
  </object>
  <object id="2" name="backdrop" x="0" y="0" width="640" height="320">
   <properties>
    <property name="z" type="int" value="0"/>
   </properties>
  </object>
  <object id="3" name="orb" x="300" y="80" width="40" height="40">
   <properties>
    <property name="z" type="int" value="2"/>
    <property name="parent" value="backdrop"/>
    <property name="float" type="float" value="24"/>
   </properties>
   <ellipse/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Targets">
  <object id="4" name="cards" x="0" y="0">
   <properties>
    <property name="magnet" value="push"/>
    <property name="anchor" value="top-left"/>
    <property name="duration" type="float" value="250"/>
    <property name="offset_x" type="float" value="8"/>
    <property name="visibility" value="partial"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/playground.tmx": {Data: []byte(sceneTMX)},
	}
}

func TestLoad(t *testing.T) {
	scene, err := Load(testFS(), "levels/playground.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if scene.Name != "playground" || scene.MapWidth != 640 || scene.MapHeight != 320 {
		t.Errorf("unexpected scene header %+v", scene)
	}
	if len(scene.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(scene.Elements))
	}
	if scene.Elements[0].Name != "backdrop" {
		t.Errorf("expected lowest z first, got %s", scene.Elements[0].Name)
	}
	card := scene.Elements[1]
	if card.Name != "card" || card.Color != "#4361ee" || card.Label != "push me" || card.W != 100 {
		t.Errorf("unexpected card %+v", card)
	}
	orb := scene.Elements[2]
	if !orb.Round || orb.Parent != "backdrop" || orb.Float != 24 {
		t.Errorf("unexpected orb %+v", orb)
	}

	if len(scene.Targets) != 1 {
		t.Fatalf("expected 1 target, got %d", len(scene.Targets))
	}
	cards := scene.Targets[0]
	if cards.Magnet != "push" || cards.Duration != 250 || cards.OffsetX != 8 {
		t.Errorf("unexpected target %+v", cards)
	}
	if len(cards.Elements) != 1 || cards.Elements[0] != "card" {
		t.Errorf("expected card bound to cards, got %v", cards.Elements)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(testFS(), "levels/none.tmx"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadAll(t *testing.T) {
	fsys := testFS()
	fsys["levels/another.tmx"] = &fstest.MapFile{Data: []byte(sceneTMX)}

	scenes, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(scenes) != 2 || scenes[0].Name != "another" || scenes[1].Name != "playground" {
		t.Errorf("expected scenes sorted by name, got %d", len(scenes))
	}

	if _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for an empty directory")
	}
}

func TestTargetDescriptor(t *testing.T) {
	tgt := Target{ID: "cards", Magnet: "push", Anchor: "top-left", Duration: 250, OffsetX: 8, Visibility: "partial"}
	d, err := tgt.Descriptor([]surface.Element{4}, nil)
	if err != nil {
		t.Fatalf("Descriptor: %v", err)
	}
	if d.Visibility != target.VisibilityPartial || d.Offset.X != 8 || len(d.Elements) != 1 {
		t.Errorf("unexpected descriptor %+v", d)
	}
	if d.Magnetism == nil || d.Magnetism.Mode != magnet.Push || d.Magnetism.Anchor != magnet.TopLeft {
		t.Errorf("unexpected magnetism %+v", d.Magnetism)
	}

	plain, err := Target{ID: "plain"}.Descriptor(nil, nil)
	if err != nil || plain.Magnetism != nil {
		t.Errorf("expected no magnetism, got %+v, %v", plain.Magnetism, err)
	}

	for _, bad := range []Target{
		{ID: "a", Visibility: "sometimes"},
		{ID: "b", Magnet: "repel"},
		{ID: "c", Magnet: "push", Anchor: "middle"},
		{ID: "d", Magnet: "pull", Easing: "wobble"},
	} {
		if _, err := bad.Descriptor(nil, nil); err == nil {
			t.Errorf("expected error for %+v", bad)
		}
	}
}
