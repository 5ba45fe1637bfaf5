// Package noise implements coherent noise generators behind a common
// Generator interface: hashed value noise, classic Perlin gradient noise, an
// OpenSimplex adapter, Ken Perlin's classic reference noise, and a fractal
// composer that layers octaves of any of them.
//
// Generators hold no sampling state, so a constructed generator may be
// shared between goroutines. Seeding happens once at construction.
package noise

import (
	"errors"
	"fmt"
)

// Generator samples a coherent noise field in one, two or three dimensions.
type Generator interface {
	Noise1D(x float64) float64
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

var (
	ErrOctaves          = errors.New("noise: octaves must be at least 1")
	ErrAmplitude        = errors.New("noise: octave amplitudes sum to zero")
	ErrNilBase          = errors.New("noise: nil base generator")
	ErrUnknownGenerator = errors.New("noise: unknown generator")
)

// Names lists the generators ByName understands, in display order.
var Names = []string{"perlin", "value", "simplex", "classic"}

// ByName builds a generator by its short name. Value noise is unseeded and
// ignores seed.
func ByName(name string, seed uint32) (Generator, error) {
	switch name {
	case "perlin":
		return NewPerlin(seed), nil
	case "value":
		return Value{}, nil
	case "simplex":
		return NewSimplex(int64(seed)), nil
	case "classic":
		return NewClassic(int64(seed)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}
