package sonify

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"noisefield/noise"
)

func TestFill_StaysInRange(t *testing.T) {
	gens := map[string]noise.Generator{
		"perlin": noise.NewPerlin(1),
		"value":  noise.Value{},
	}
	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			buf := make([]float32, 4096)
			Fill(buf, g, 0, 0.37, 1)
			for i, s := range buf {
				if s < -1 || s > 1 {
					t.Fatalf("sample %d = %v outside [-1, 1]", i, s)
				}
			}
		})
	}
}

func TestFill_AdvancesPosition(t *testing.T) {
	g := noise.NewPerlin(2)
	buf := make([]float32, 100)
	pos := Fill(buf, g, 1, 0.25, 0.5)
	if math.Abs(pos-26) > 1e-9 {
		t.Errorf("pos = %v, want 26", pos)
	}

	// a continued fill picks up where the first left off
	whole := make([]float32, 200)
	Fill(whole, g, 1, 0.25, 0.5)
	next := make([]float32, 100)
	Fill(next, g, pos, 0.25, 0.5)
	for i := range next {
		if math.Abs(float64(next[i]-whole[100+i])) > 1e-6 {
			t.Fatalf("sample %d: %v vs %v", i, next[i], whole[100+i])
		}
	}
}

func TestFill_ValueNoiseCentred(t *testing.T) {
	buf := make([]float32, 1)
	// Hash3(0,0,0) is 0, the bottom of value noise's range.
	Fill(buf, noise.Value{}, 0, 1, 1)
	if buf[0] != -1 {
		t.Errorf("sample = %v, want -1", buf[0])
	}
}

func TestEncode(t *testing.T) {
	var out bytes.Buffer
	samples := []float32{0, 0.5, -1}
	if _, err := encode(&out, samples, nil); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 12 {
		t.Fatalf("wrote %d bytes, want 12", out.Len())
	}
	for i, want := range samples {
		got := math.Float32frombits(binary.LittleEndian.Uint32(out.Bytes()[i*4:]))
		if got != want {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
}
