package noise

import "math"

// Animator drives a generator through time for frame-based visuals. It is
// owned by a single render loop and is not safe for concurrent use.
type Animator struct {
	gen  Generator
	time float64
}

func NewAnimator(g Generator) *Animator {
	return &Animator{gen: g}
}

func (a *Animator) Generator() Generator { return a.gen }

// SetGenerator swaps the underlying field without resetting the clock.
func (a *Animator) SetGenerator(g Generator) { a.gen = g }

func (a *Animator) Time() float64 { return a.time }

func (a *Animator) Update(delta float64) {
	a.time += delta
}

// Sample returns the 2D field at (x, y), scrolled along z by the clock.
func (a *Animator) Sample(x, y, speed float64) float64 {
	return a.gen.Noise3D(x, y, a.time*speed)
}

// FBM sums octaves of the 2D field with lacunarity 2. Zero or negative
// octaves return 0.
func (a *Animator) FBM(x, y float64, octaves int, persistence float64) float64 {
	if octaves < 1 || amplitudeSum(octaves, persistence) == 0 {
		return 0
	}
	return layer(octaves, persistence, 2, func(freq float64) float64 {
		return a.gen.Noise2D(x*freq, y*freq)
	})
}

// DistortWave bends sin(x) with time-evolving FBM. chaos in [0,1] raises the
// octave count, persistence and blend share together.
func (a *Animator) DistortWave(x, amplitude, chaos float64) float64 {
	base := math.Sin(x)

	octaves := 2 + int(chaos*6)
	persistence := 0.3 + chaos*0.5
	distortion := a.FBM(x*0.1, a.time*0.1, octaves, persistence)

	blend := 0.1 + chaos*0.4
	return base*(1-blend) + distortion*blend*amplitude
}
