// Package export writes noise fields and profiles as PNG images.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/mdlayher/waveform"
	"golang.org/x/image/draw"

	"noisefield/mathx"
	"noisefield/noise"
)

var (
	ErrEmpty = errors.New("export: nothing to draw")
	ErrScale = errors.New("export: scale must be at least 1 and keep each side within MaxSide")
)

// MaxSide is the largest heightmap side, in pixels, Heightmap will produce.
const MaxSide = 16384

// Heightmap encodes grid (indexed [y][x]) as a grayscale PNG, black at the
// grid minimum and white at its maximum. With scale > 1 the image is
// upscaled with Catmull-Rom filtering.
func Heightmap(w io.Writer, grid [][]float64, scale int) error {
	img, err := grayscale(grid)
	if err != nil {
		return err
	}
	b := img.Bounds()
	if scale < 1 || scale > MaxSide/b.Dx() || scale > MaxSide/b.Dy() {
		return fmt.Errorf("%w: %dx%d by %d", ErrScale, b.Dx(), b.Dy(), scale)
	}

	var out image.Image = img
	if scale > 1 {
		dst := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = dst
	}

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("export: encode heightmap: %w", err)
	}
	return nil
}

func grayscale(grid [][]float64) (*image.Gray, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmpty
	}
	height, width := len(grid), len(grid[0])
	lo, hi := noise.Range(grid)

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y, row := range grid {
		for x := 0; x < width && x < len(row); x++ {
			t := mathx.Clamp(mathx.InverseLerp(lo, hi, row[x]), 0, 1)
			if math.IsNaN(t) {
				t = 0
			}
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round(t * 255))})
		}
	}
	return img, nil
}

type WaveformOptions struct {
	ScaleX, ScaleY uint
	FG, BG         color.Color
}

func DefaultWaveformOptions() WaveformOptions {
	return WaveformOptions{
		ScaleX: 2,
		ScaleY: 2,
		FG:     color.RGBA{R: 255, A: 255},
		BG:     color.White,
	}
}

// Waveform draws profile as a mirrored amplitude plot. Values are remapped
// from the profile's own min/max to [0,1] before drawing.
func Waveform(w io.Writer, profile []float64, opts WaveformOptions) error {
	if len(profile) == 0 {
		return ErrEmpty
	}

	// Only Draw is used, so the reader never gets read.
	wf, err := waveform.New(bytes.NewReader(nil),
		waveform.Scale(opts.ScaleX, opts.ScaleY),
		waveform.FGColorFunction(waveform.SolidColor(opts.FG)),
		waveform.BGColorFunction(waveform.SolidColor(opts.BG)),
	)
	if err != nil {
		return fmt.Errorf("export: create waveform: %w", err)
	}

	lo, hi := noise.Range([][]float64{profile})
	vals := make([]float64, len(profile))
	for i, v := range profile {
		if t := mathx.InverseLerp(lo, hi, v); !math.IsNaN(t) {
			vals[i] = mathx.Clamp(t, 0, 1)
		}
	}

	if err := png.Encode(w, wf.Draw(vals)); err != nil {
		return fmt.Errorf("export: encode waveform: %w", err)
	}
	return nil
}
