package noise

import "math"

// Fractal layers octaves of a base generator. Each octave multiplies the
// frequency by lacunarity and the amplitude by persistence; the sum is
// divided by the total amplitude so the output keeps the base range.
type Fractal struct {
	base        Generator
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewFractal rejects octaves < 1 and parameter sets whose amplitudes sum to
// zero, both of which would otherwise yield NaN on every sample.
func NewFractal(base Generator, octaves int, persistence, lacunarity float64) (*Fractal, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	if octaves < 1 {
		return nil, ErrOctaves
	}
	if s := amplitudeSum(octaves, persistence); s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, ErrAmplitude
	}
	return &Fractal{
		base:        base,
		octaves:     octaves,
		persistence: persistence,
		lacunarity:  lacunarity,
	}, nil
}

func (f *Fractal) Octaves() int { return f.octaves }

func (f *Fractal) Base() Generator { return f.base }

func (f *Fractal) Noise1D(x float64) float64 {
	return layer(f.octaves, f.persistence, f.lacunarity, func(freq float64) float64 {
		return f.base.Noise1D(x * freq)
	})
}

func (f *Fractal) Noise2D(x, y float64) float64 {
	return layer(f.octaves, f.persistence, f.lacunarity, func(freq float64) float64 {
		return f.base.Noise2D(x*freq, y*freq)
	})
}

func (f *Fractal) Noise3D(x, y, z float64) float64 {
	return layer(f.octaves, f.persistence, f.lacunarity, func(freq float64) float64 {
		return f.base.Noise3D(x*freq, y*freq, z*freq)
	})
}

// layer is the shared octave loop. Callers guarantee a non-zero amplitude sum.
func layer(octaves int, persistence, lacunarity float64, sample func(freq float64) float64) float64 {
	var total, maxValue float64
	frequency, amplitude := 1.0, 1.0

	for i := 0; i < octaves; i++ {
		total += sample(frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxValue
}

func amplitudeSum(octaves int, persistence float64) float64 {
	var sum float64
	amplitude := 1.0
	for i := 0; i < octaves; i++ {
		sum += amplitude
		amplitude *= persistence
	}
	return sum
}
