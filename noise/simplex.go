package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Simplex adapts OpenSimplex noise to Generator. Output is roughly [-1, 1].
type Simplex struct {
	noise opensimplex.Noise
}

func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

// Noise1D samples the y=0 line of the 2D field; OpenSimplex has no 1D form.
func (s *Simplex) Noise1D(x float64) float64 {
	return s.noise.Eval2(x, 0)
}

func (s *Simplex) Noise2D(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}

func (s *Simplex) Noise3D(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)
}

var _ Generator = (*perlin.Perlin)(nil)

// NewClassic returns Ken Perlin's classic reference noise (random gradient
// tables, three summed harmonics with alpha=2, beta=2).
func NewClassic(seed int64) Generator {
	return perlin.NewPerlin(2, 2, 3, seed)
}
