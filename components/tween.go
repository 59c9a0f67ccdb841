package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween bobs an element vertically; the sequence yields the Y position.
var Tween = donburi.NewComponentType[gween.Sequence]()
