// Package spectrum measures how energy in a 1D noise signal spreads across
// frequency bands.
package spectrum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/stat"

	"noisefield/noise"
)

// Band is a frequency range given as fractions of the Nyquist bin.
type Band struct {
	Name   string
	Lo, Hi float64
	High   bool
}

var Bands = []Band{
	{Name: "Sub", Lo: 0, Hi: 0.01},
	{Name: "Low", Lo: 0.01, Hi: 0.03},
	{Name: "Low-Mid", Lo: 0.03, Hi: 0.07},
	{Name: "Mid", Lo: 0.07, Hi: 0.15},
	{Name: "Upper-Mid", Lo: 0.15, Hi: 0.3},
	{Name: "High", Lo: 0.3, Hi: 0.6, High: true},
	{Name: "Air", Lo: 0.6, Hi: 1, High: true},
}

type Result struct {
	Energies  []float64 // RMS magnitude per band, aligned with Bands
	Total     float64
	HighShare float64 // share of Total in High bands
	Roughness float64 // 0 for smooth signals, ~1 for white noise
}

type Analyzer struct {
	size   int
	fft    *fourier.FFT
	window []float64
}

func NewAnalyzer(size int) *Analyzer {
	ones := make([]float64, size)
	for i := range ones {
		ones[i] = 1
	}
	return &Analyzer{
		size:   size,
		fft:    fourier.NewFFT(size),
		window: window.Hann(ones),
	}
}

func (a *Analyzer) Size() int { return a.size }

// Signal samples g along x from 0, one value every step.
func Signal(g noise.Generator, n int, step float64) []float64 {
	return noise.Profile(g, n, 0, step)
}

// Analyze removes the mean, applies a Hann window and sums bin magnitudes
// per band. Signals are truncated or zero-padded to the analyzer size.
func (a *Analyzer) Analyze(signal []float64) Result {
	n := min(len(signal), a.size)
	mean := 0.0
	if n > 0 {
		mean = stat.Mean(signal[:n], nil)
	}

	windowed := make([]float64, a.size)
	for i := 0; i < n; i++ {
		windowed[i] = (signal[i] - mean) * a.window[i]
	}

	coeffs := a.fft.Coefficients(nil, windowed)
	nyquist := float64(len(coeffs) - 1)

	res := Result{Energies: make([]float64, len(Bands))}
	var high float64
	for i, band := range Bands {
		lo := int(band.Lo * nyquist)
		hi := max(int(band.Hi*nyquist), lo+1)

		var sum float64
		for j := lo; j < hi && j < len(coeffs); j++ {
			m := cmplx.Abs(coeffs[j])
			sum += m * m
		}
		res.Energies[i] = math.Sqrt(sum / float64(hi-lo))
		res.Total += res.Energies[i]
		if band.High {
			high += res.Energies[i]
		}
	}

	if res.Total > 0 {
		res.HighShare = high / res.Total
	}
	res.Roughness = roughness(res.Energies, res.Total, res.HighShare)
	return res
}

// roughness blends spectral flatness with the high-band share, each scaled so
// that a flat (white) spectrum scores 1.
func roughness(energies []float64, total, highShare float64) float64 {
	if total < 0.0001 {
		return 0
	}

	k := float64(len(energies))
	mean := 1 / k
	var variance float64
	for _, e := range energies {
		d := e/total - mean
		variance += d * d
	}
	variance /= k
	maxVariance := (k - 1) / (k * k)
	flatness := 1 - variance/maxVariance

	highBands := 0
	for _, b := range Bands {
		if b.High {
			highBands++
		}
	}
	whiteShare := float64(highBands) / k

	r := 0.6*flatness + 0.4*math.Min(1, highShare/whiteShare)
	return math.Max(0, math.Min(1, r))
}
