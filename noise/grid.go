package noise

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid samples a w×h slice of g's field at height z. Cell (x, y) maps to
// (offX + x*scale, offY + y*scale).
func Grid(g Generator, w, h int, scale, offX, offY, z float64) [][]float64 {
	grid := make([][]float64, h)
	for y := range grid {
		row := make([]float64, w)
		for x := range row {
			row[x] = g.Noise3D(offX+float64(x)*scale, offY+float64(y)*scale, z)
		}
		grid[y] = row
	}
	return grid
}

// Profile samples n points of g along the x axis, step apart.
func Profile(g Generator, n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Noise1D(start + float64(i)*step)
	}
	return out
}

// Range returns the smallest and largest value in grid. An empty grid
// yields (0, 0).
func Range(grid [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		lo = math.Min(lo, floats.Min(row))
		hi = math.Max(hi, floats.Max(row))
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// Bounds reports the nominal output range of g: [0,1] for value noise (and
// fractals over it), [-1,1] for the gradient generators.
func Bounds(g Generator) (lo, hi float64) {
	switch g := g.(type) {
	case Value:
		return 0, 1
	case *Fractal:
		return Bounds(g.base)
	}
	return -1, 1
}
