package noise

import (
	"math"

	"noisefield/mathx"
	"noisefield/random"
)

// Perlin is classic gradient noise over a shuffled 256-entry permutation
// table. Output is roughly [-1, 1]; 3D samples can slightly overshoot.
type Perlin struct {
	perm [512]int
}

// NewPerlin shuffles the permutation table with a seeded LCG, so equal seeds
// give identical fields.
func NewPerlin(seed uint32) *Perlin {
	return NewPerlinFrom(random.New(seed))
}

// NewPerlinUnseeded shuffles from a non-deterministic source. Fields differ
// between runs.
func NewPerlinUnseeded() *Perlin {
	return NewPerlinFrom(random.Entropy())
}

// NewPerlinFrom shuffles the table with src (Fisher-Yates, index 255 down).
func NewPerlinFrom(src random.Source) *Perlin {
	var p [256]int
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := int(math.Floor(src.Next() * float64(i+1)))
		p[i], p[j] = p[j], p[i]
	}

	pn := &Perlin{}
	for i := range pn.perm {
		pn.perm[i] = p[i&255]
	}
	return pn
}

// Permutation returns a copy of the 256-entry table.
func (pn *Perlin) Permutation() [256]int {
	var p [256]int
	copy(p[:], pn.perm[:256])
	return p
}

func (pn *Perlin) Noise1D(x float64) float64 {
	return pn.Noise3D(x, 0, 0)
}

func (pn *Perlin) Noise2D(x, y float64) float64 {
	return pn.Noise3D(x, y, 0)
}

func (pn *Perlin) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X := int(fx) & 255
	Y := int(fy) & 255
	Z := int(fz) & 255

	x -= fx
	y -= fy
	z -= fz

	u := mathx.Fade(x)
	v := mathx.Fade(y)
	w := mathx.Fade(z)

	p := &pn.perm
	A := p[X] + Y
	AA := p[A] + Z
	AB := p[A+1] + Z
	B := p[X+1] + Y
	BA := p[B] + Z
	BB := p[B+1] + Z

	return mathx.Lerp(
		mathx.Lerp(
			mathx.Lerp(grad(p[AA], x, y, z), grad(p[BA], x-1, y, z), u),
			mathx.Lerp(grad(p[AB], x, y-1, z), grad(p[BB], x-1, y-1, z), u),
			v,
		),
		mathx.Lerp(
			mathx.Lerp(grad(p[AA+1], x, y, z-1), grad(p[BA+1], x-1, y, z-1), u),
			mathx.Lerp(grad(p[AB+1], x, y-1, z-1), grad(p[BB+1], x-1, y-1, z-1), u),
			v,
		),
		w,
	)
}

// grad dots (x, y, z) with one of the 12 cube-edge directions picked by the
// low four bits of hash.
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15

	u := y
	if h < 8 {
		u = x
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

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
