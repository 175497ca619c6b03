package wray

// NewCSG registers a constructive-solid-geometry node combining left and
// right under op, marks both children's parent_id as the new node, and
// returns its id.
func NewCSG(arena *Arena, op CSGOperation, left, right int) int {
	s := newShapeTemplate(KindCSG)
	s.Operation = op
	s.Left = left
	s.Right = right
	id := arena.Put(s)

	l := arena.Get(left)
	l.ParentID = id
	arena.Put(l)

	r := arena.Get(right)
	r.ParentID = id
	arena.Put(r)

	return id
}
