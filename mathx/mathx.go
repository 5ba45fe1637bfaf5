// Package mathx holds the scalar helpers shared by the noise and palette
// packages.
package mathx

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InverseLerp returns where v sits between a and b. A zero-width span maps to 0.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Remap maps v from [inLo, inHi] onto [outLo, outHi] without clamping.
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return Lerp(outLo, outHi, InverseLerp(inLo, inHi, v))
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Smoothstep is the cubic Hermite weight t*t*(3-2t).
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Fade is Perlin's quintic 6t^5-15t^4+10t^3.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Wrap folds v into [lo, hi).
func Wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if span == 0 {
		return lo
	}
	w := math.Mod(v-lo, span)
	if w < 0 {
		w += span
	}
	// a tiny negative remainder can round up to span
	if w >= span {
		w = 0
	}
	return w + lo
}
