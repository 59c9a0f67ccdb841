// Package visibility decides whether a target is actually unobstructed.
//
// The test samples the four corners of the element box (inset by one unit so
// edge ties resolve to the element itself) and asks the host which element is
// on top at each point. It is a coarse heuristic: a target whose corners are
// covered but whose middle is exposed reads as hidden, and non-rectangular
// shapes can produce false negatives.
package visibility

import (
	"github.com/automoto/lodestone/surface"
	"github.com/automoto/lodestone/target"
)

const (
	cornerInset = 1
	// maxDepth bounds the ancestor walk in case a host reports a cycle.
	maxDepth = 256
)

type Detector struct {
	occ surface.Occlusion
}

func NewDetector(occ surface.Occlusion) *Detector {
	return &Detector{occ: occ}
}

// IsVisible applies the target's visibility policy.
func (d *Detector) IsVisible(s *target.Single) bool {
	policy := s.Visibility()
	if policy == target.VisibilityNone {
		return true
	}
	if d.occ == nil {
		return false
	}

	hits := 0
	for _, p := range s.Rect.Corners(cornerInset) {
		el, ok := d.occ.TopmostAt(p.X, p.Y)
		if ok && d.within(el, s.Element) {
			hits++
			if policy == target.VisibilityPartial {
				return true
			}
		} else if policy == target.VisibilityFull {
			return false
		}
	}
	return policy == target.VisibilityFull && hits == 4
}

// within reports whether el is root or one of its descendants.
func (d *Detector) within(el, root surface.Element) bool {
	for depth := 0; depth < maxDepth; depth++ {
		if el == root {
			return true
		}
		parent, ok := d.occ.Parent(el)
		if !ok || parent == surface.None {
			return false
		}
		el = parent
	}
	return false
}

