package wray

import "github.com/kestrel-render/wray/internal/prim"

// NewGroup registers an empty group and returns its id. Use AddChild to
// populate it; each call recomputes the group's Bounds.
func NewGroup(arena *Arena) int {
	s := newShapeTemplate(KindGroup)
	s.Bounds = Bounds{Min: prim.Point(0, 0, 0), Max: prim.Point(0, 0, 0)}
	return arena.Put(s)
}
