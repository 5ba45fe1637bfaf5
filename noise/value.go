package noise

import (
	"math"

	"noisefield/mathx"
)

// Value is lattice value noise. Each integer corner is hashed to [0,1] and
// the corners are blended with a smoothstep weight, so samples taken exactly
// on the lattice return the raw hash.
type Value struct{}

// Hash3 maps a lattice point to [0,1] with a multiplicative 32-bit hash.
func Hash3(x, y, z int) float64 {
	h := uint32(int32(x))*374761393 + uint32(int32(y))*668265263 + uint32(int32(z))*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h) / math.MaxUint32
}

func Hash2(x, y int) float64 { return Hash3(x, y, 0) }

func Hash1(x int) float64 { return Hash3(x, 0, 0) }

func (Value) Noise1D(x float64) float64 {
	fx := math.Floor(x)
	ix := int(fx)
	sx := mathx.Smoothstep(x - fx)

	return mathx.Lerp(Hash1(ix), Hash1(ix+1), sx)
}

func (Value) Noise2D(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int(fx), int(fy)
	sx := mathx.Smoothstep(x - fx)
	sy := mathx.Smoothstep(y - fy)

	n0 := mathx.Lerp(Hash2(ix, iy), Hash2(ix+1, iy), sx)
	n1 := mathx.Lerp(Hash2(ix, iy+1), Hash2(ix+1, iy+1), sx)
	return mathx.Lerp(n0, n1, sy)
}

func (Value) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	ix, iy, iz := int(fx), int(fy), int(fz)
	sx := mathx.Smoothstep(x - fx)
	sy := mathx.Smoothstep(y - fy)
	sz := mathx.Smoothstep(z - fz)

	n00 := mathx.Lerp(Hash3(ix, iy, iz), Hash3(ix+1, iy, iz), sx)
	n10 := mathx.Lerp(Hash3(ix, iy+1, iz), Hash3(ix+1, iy+1, iz), sx)
	n01 := mathx.Lerp(Hash3(ix, iy, iz+1), Hash3(ix+1, iy, iz+1), sx)
	n11 := mathx.Lerp(Hash3(ix, iy+1, iz+1), Hash3(ix+1, iy+1, iz+1), sx)

	return mathx.Lerp(mathx.Lerp(n00, n10, sy), mathx.Lerp(n01, n11, sy), sz)
}
