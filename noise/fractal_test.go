package noise

import (
	"errors"
	"math"
	"testing"
)

type constant float64

func (c constant) Noise1D(float64) float64                   { return float64(c) }
func (c constant) Noise2D(float64, float64) float64          { return float64(c) }
func (c constant) Noise3D(float64, float64, float64) float64 { return float64(c) }

func TestFractal_SingleOctaveIsBase(t *testing.T) {
	bases := map[string]Generator{
		"perlin": NewPerlin(42),
		"value":  Value{},
	}
	for name, base := range bases {
		t.Run(name, func(t *testing.T) {
			f, err := NewFractal(base, 1, 0.37, 3.1)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 100; i++ {
				x, y, z := float64(i)*0.7-20, float64(i)*0.3, float64(i)*0.13
				if f.Noise1D(x) != base.Noise1D(x) {
					t.Fatalf("Noise1D(%v) differs from base", x)
				}
				if f.Noise2D(x, y) != base.Noise2D(x, y) {
					t.Fatalf("Noise2D(%v, %v) differs from base", x, y)
				}
				if f.Noise3D(x, y, z) != base.Noise3D(x, y, z) {
					t.Fatalf("Noise3D(%v, %v, %v) differs from base", x, y, z)
				}
			}
		})
	}
}

func TestFractal_NormalizesAmplitude(t *testing.T) {
	for _, octaves := range []int{1, 2, 5, 8} {
		f, err := NewFractal(constant(0.7), octaves, 0.5, 2)
		if err != nil {
			t.Fatal(err)
		}
		if got := f.Noise2D(1, 2); math.Abs(got-0.7) > 1e-12 {
			t.Errorf("octaves=%d: got %v, want 0.7", octaves, got)
		}
	}
}

func TestFractal_StaysInBaseRange(t *testing.T) {
	f, err := NewFractal(Value{}, 6, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2000; i++ {
		v := f.Noise2D(float64(i)*0.13, float64(i)*0.07)
		if v < 0 || v > 1 {
			t.Fatalf("sample %v outside value-noise range", v)
		}
	}
}

func TestFractal_OctavesLayerDetail(t *testing.T) {
	base := NewPerlin(8)
	one, _ := NewFractal(base, 1, 0.5, 2)
	four, _ := NewFractal(base, 4, 0.5, 2)

	differs := false
	for i := 0; i < 50; i++ {
		x := float64(i)*0.21 + 0.05
		if one.Noise1D(x) != four.Noise1D(x) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("extra octaves did not change the signal")
	}
}

func TestNewFractal_Errors(t *testing.T) {
	tests := []struct {
		name        string
		base        Generator
		octaves     int
		persistence float64
		want        error
	}{
		{"zero octaves", Value{}, 0, 0.5, ErrOctaves},
		{"negative octaves", Value{}, -2, 0.5, ErrOctaves},
		{"nil base", nil, 3, 0.5, ErrNilBase},
		{"cancelling amplitudes", Value{}, 2, -1, ErrAmplitude},
		{"nan persistence", Value{}, 2, math.NaN(), ErrAmplitude},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFractal(tt.base, tt.octaves, tt.persistence, 2)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if f != nil {
				t.Error("expected nil fractal on error")
			}
		})
	}
}

func TestFractal_ComposesFractal(t *testing.T) {
	inner, err := NewFractal(NewPerlin(1), 2, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}
	outer, err := NewFractal(inner, 1, 0.5, 2)
	if err != nil {
		t.Fatal(err)
	}
	if outer.Noise2D(0.3, 0.9) != inner.Noise2D(0.3, 0.9) {
		t.Error("single-octave wrapper changed its fractal base")
	}
}
