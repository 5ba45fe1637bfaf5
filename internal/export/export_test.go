package export

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"testing"

	"noisefield/noise"
)

func TestHeightmap(t *testing.T) {
	grid := noise.Grid(noise.NewPerlin(7), 16, 8, 0.1, 0, 0, 0)

	tests := []struct {
		scale         int
		width, height int
	}{
		{1, 16, 8},
		{3, 48, 24},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Heightmap(&buf, grid, tt.scale); err != nil {
			t.Fatalf("scale %d: %v", tt.scale, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("scale %d: decode: %v", tt.scale, err)
		}
		if b := img.Bounds(); b.Dx() != tt.width || b.Dy() != tt.height {
			t.Errorf("scale %d: size %dx%d, want %dx%d", tt.scale, b.Dx(), b.Dy(), tt.width, tt.height)
		}
	}
}

func TestHeightmap_SpansFullGrayRange(t *testing.T) {
	grid := [][]float64{
		{-0.3, 0.1},
		{0.5, 0.2},
	}
	var buf bytes.Buffer
	if err := Heightmap(&buf, grid, 1); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray", img)
	}
	if got := gray.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("minimum = %d, want 0", got)
	}
	if got := gray.GrayAt(0, 1).Y; got != 255 {
		t.Errorf("maximum = %d, want 255", got)
	}
}

func TestHeightmap_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Heightmap(&buf, nil, 1); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty grid: err = %v", err)
	}
	tests := []struct {
		name  string
		w, h  int
		scale int
	}{
		{"zero scale", 1, 1, 0},
		{"overflowing scale", 256, 256, math.MaxInt},
		{"past max side", 256, 4, MaxSide/256 + 1},
		{"tall grid", 1, MaxSide + 1, 1},
	}
	for _, tt := range tests {
		grid := make([][]float64, tt.h)
		for y := range grid {
			grid[y] = make([]float64, tt.w)
		}
		if err := Heightmap(&buf, grid, tt.scale); !errors.Is(err, ErrScale) {
			t.Errorf("%s: err = %v, want ErrScale", tt.name, err)
		}
	}
}

func TestWaveform(t *testing.T) {
	profile := noise.Profile(noise.NewPerlin(3), 200, 0, 0.05)

	var buf bytes.Buffer
	if err := Waveform(&buf, profile, DefaultWaveformOptions()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Empty() {
		t.Error("waveform image is empty")
	}

	if err := Waveform(&buf, nil, DefaultWaveformOptions()); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty profile: err = %v", err)
	}
}
