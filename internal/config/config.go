// Package config parses and validates command-line settings for the
// noisefield CLI.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"noisefield/noise"
	"noisefield/palette"
)

var (
	ErrOctaves     = errors.New("config: octaves must be at least 1")
	ErrPersistence = errors.New("config: persistence must be >= 0")
	ErrLacunarity  = errors.New("config: lacunarity must be > 0")
	ErrSize        = errors.New("config: sizes and counts must be positive")
	ErrSeed        = errors.New("config: seed must be -1 or fit in 32 bits")
	ErrGenerator   = errors.New("config: unknown generator")
	ErrPalette     = errors.New("config: unknown palette")
	ErrKind        = errors.New("config: export kind must be heightmap or waveform")
	ErrFFTSize     = errors.New("config: fft size must be a power of two >= 16")
	ErrGain        = errors.New("config: gain must be within [0,1]")
	ErrNonFinite   = errors.New("config: scale and step must be finite")
)

// MaxSide bounds every image side and sample count a command may allocate.
const MaxSide = 16384

// MaxCount bounds sample and FFT sizes.
const MaxCount = 1 << 20

// Unseeded marks a Seed that should come from the clock.
const Unseeded = -1

type Config struct {
	Generator     string
	Seed          int64
	SeedFromMedia bool
	Octaves       int
	Persistence   float64
	Lacunarity    float64
	Scale         float64
	Palette       string

	Width  int
	Height int

	Count int
	Step  float64
	Stats bool

	FFTSize int

	Kind    string
	Out     string
	Upscale int

	Duration   time.Duration
	SampleRate int
	Gain       float64
	Pacat      bool

	LogFile string
	Debug   bool
}

func Default() Config {
	return Config{
		Generator:   "perlin",
		Seed:        Unseeded,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
		Scale:       0.05,
		Palette:     "terrain",
		Width:       256,
		Height:      256,
		Count:       16,
		Step:        0.1,
		FFTSize:     2048,
		Kind:        "heightmap",
		Out:         "noise.png",
		Upscale:     1,
		Duration:    5 * time.Second,
		SampleRate:  44100,
		Gain:        0.5,
	}
}

// Parse reads flags for subcommand cmd from args and validates the result.
// Flag errors and usage go to output.
func Parse(cmd string, args []string, output io.Writer) (Config, error) {
	c := Default()

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&c.Generator, "gen", c.Generator, "noise generator: perlin, value, simplex, classic")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generator seed, -1 for a clock seed")
	fs.BoolVar(&c.SeedFromMedia, "seed-from-media", c.SeedFromMedia, "derive the seed from the currently playing track")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "fractal octaves")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "amplitude decay per octave")
	fs.Float64Var(&c.Lacunarity, "lacunarity", c.Lacunarity, "frequency growth per octave")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "field units per cell")
	fs.StringVar(&c.Palette, "palette", c.Palette, "color ramp: terrain, plasma, retro, grayscale")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log at debug level")

	switch cmd {
	case "sample":
		fs.IntVar(&c.Count, "n", c.Count, "number of samples")
		fs.Float64Var(&c.Step, "step", c.Step, "distance between samples")
		fs.BoolVar(&c.Stats, "stats", c.Stats, "print mean and standard deviation")
	case "spectrum":
		fs.IntVar(&c.FFTSize, "fft", c.FFTSize, "FFT size (power of two)")
		fs.Float64Var(&c.Step, "step", c.Step, "distance between samples")
	case "export":
		fs.StringVar(&c.Kind, "kind", c.Kind, "heightmap or waveform")
		fs.StringVar(&c.Out, "o", c.Out, "output PNG path")
		fs.IntVar(&c.Width, "w", c.Width, "field width in cells")
		fs.IntVar(&c.Height, "h", c.Height, "field height in cells")
		fs.IntVar(&c.Upscale, "up", c.Upscale, "heightmap upscale factor")
		fs.Float64Var(&c.Step, "step", c.Step, "distance between waveform samples")
	case "play":
		fs.DurationVar(&c.Duration, "d", c.Duration, "playback duration")
		fs.IntVar(&c.SampleRate, "rate", c.SampleRate, "sample rate in Hz")
		fs.Float64Var(&c.Gain, "gain", c.Gain, "output gain in [0,1]")
		fs.Float64Var(&c.Step, "step", 0.002, "field distance per audio sample")
		fs.BoolVar(&c.Pacat, "pacat", c.Pacat, "pipe to pacat instead of PortAudio")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.Octaves < 1:
		return ErrOctaves
	case c.Persistence < 0 || math.IsNaN(c.Persistence):
		return ErrPersistence
	case !(c.Lacunarity > 0) || math.IsInf(c.Lacunarity, 1):
		return ErrLacunarity
	case !finite(c.Scale) || !finite(c.Step):
		return ErrNonFinite
	case c.Seed < Unseeded || c.Seed > math.MaxUint32:
		return fmt.Errorf("%w: %d", ErrSeed, c.Seed)
	case !slices.Contains(noise.Names, c.Generator):
		return fmt.Errorf("%w: %q", ErrGenerator, c.Generator)
	case !slices.Contains(palette.Names, c.Palette):
		return fmt.Errorf("%w: %q", ErrPalette, c.Palette)
	case c.Kind != "heightmap" && c.Kind != "waveform":
		return fmt.Errorf("%w: %q", ErrKind, c.Kind)
	case c.Width < 1 || c.Height < 1 || c.Upscale < 1 || c.Count < 1 || c.SampleRate < 1 || c.Duration <= 0:
		return ErrSize
	case c.Width > MaxSide || c.Height > MaxSide || c.Upscale > MaxSide/c.Width || c.Upscale > MaxSide/c.Height:
		return fmt.Errorf("%w: %dx%d upscaled by %d exceeds %d pixels a side", ErrSize, c.Width, c.Height, c.Upscale, MaxSide)
	case c.Count > MaxCount:
		return fmt.Errorf("%w: %d samples exceeds %d", ErrSize, c.Count, MaxCount)
	case c.Gain < 0 || c.Gain > 1 || math.IsNaN(c.Gain):
		return ErrGain
	case c.FFTSize < 16 || c.FFTSize > MaxCount || c.FFTSize&(c.FFTSize-1) != 0:
		return fmt.Errorf("%w: %d", ErrFFTSize, c.FFTSize)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Seeded reports whether an explicit seed was given.
func (c Config) Seeded() bool {
	return c.Seed != Unseeded
}
