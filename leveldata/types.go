// Package leveldata parses playground scenes from Tiled TMX files. It has no
// dependency on ebitengine; scenes are plain data that resolve into target
// descriptors.
package leveldata

// Scene holds everything a TMX file declares about the playground.
type Scene struct {
	Name      string
	Path      string
	MapWidth  int
	MapHeight int
	Elements  []Element
	Targets   []Target
}

// Element is one rectangle of the surface, read from the "Elements" object
// group. Parent and Target refer to other objects by name.
type Element struct {
	Name   string
	X, Y   float64
	W, H   float64
	Z      int
	Color  string
	Label  string
	Parent string
	Target string
	Round  bool
	// Float is the vertical travel of a bobbing element, 0 for static ones.
	Float float64
}

// Target is the behaviour shared by every element whose Target property
// names it, read from the "Targets" object group.
type Target struct {
	ID         string
	OffsetX    float64
	OffsetY    float64
	Visibility string
	Magnet     string // "", "pull" or "push"
	Anchor     string
	Easing     string
	Duration   float64
	Elements   []string
}
