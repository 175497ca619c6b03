package wray

import (
	"math"
	"math/rand"
)

// perlin is a small, seeded gradient-noise field. There is no noise library
// anywhere in the retrieval pack, so this follows the same posture as the
// teacher's own small hand-rolled parsers: a bespoke, self-contained
// algorithm rather than a dependency.
type perlin struct {
	perm [512]int
}

// newPerlin builds a permutation table from seed, deterministically, so the
// same seed always produces the same noise field (required for thread-safe
// reuse across a parallel render, per the scene-scoped RNG discipline used
// elsewhere in this package).
func newPerlin(seed int64) *perlin {
	r := rand.New(rand.NewSource(seed))
	var p perlin
	var table [256]int
	for i := range table {
		table[i] = i
	}
	r.Shuffle(256, func(i, j int) { table[i], table[j] = table[j], table[i] })
	for i := 0; i < 512; i++ {
		p.perm[i] = table[i%256]
	}
	return &p
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	var u float64
	if h < 8 {
		u = x
	} else {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	var gu, gv float64
	if h&1 == 0 {
		gu = u
	} else {
		gu = -u
	}
	if h&2 == 0 {
		gv = v
	} else {
		gv = -v
	}
	return gu + gv
}

// sample returns a coherent noise value in roughly [-1, 1] at (x, y, z).
func (p *perlin) sample(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	a := p.perm[xi] + yi
	aa := p.perm[a&511] + zi
	ab := p.perm[(a+1)&511] + zi
	b := p.perm[(xi+1)&511] + yi
	ba := p.perm[b&511] + zi
	bb := p.perm[(b+1)&511] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p.perm[aa&511], xf, yf, zf), grad(p.perm[ba&511], xf-1, yf, zf)),
			lerp(u, grad(p.perm[ab&511], xf, yf-1, zf), grad(p.perm[bb&511], xf-1, yf-1, zf)),
		),
		lerp(v,
			lerp(u, grad(p.perm[(aa+1)&511], xf, yf, zf-1), grad(p.perm[(ba+1)&511], xf-1, yf, zf-1)),
			lerp(u, grad(p.perm[(ab+1)&511], xf, yf-1, zf-1), grad(p.perm[(bb+1)&511], xf-1, yf-1, zf-1)),
		),
	)
}
