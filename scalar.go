package wray

import "github.com/kestrel-render/wray/internal/prim"

// epsilon mirrors prim.Epsilon: the tolerance used for equality, coplanar
// rejection, backface rejection and the over/under-point offsets.
const epsilon = prim.Epsilon

func eq(a, b float64) bool {
	return prim.Eq(a, b)
}
