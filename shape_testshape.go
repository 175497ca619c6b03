package wray

// NewTestShape registers a shape with no geometry of its own, used only in
// tests to assert how callers transform rays and points before dispatching
// to a shape's local-space methods.
func NewTestShape(arena *Arena) int {
	return arena.Put(newShapeTemplate(KindTest))
}
