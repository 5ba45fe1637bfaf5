package noise

import (
	"math"
	"testing"

	"noisefield/random"
)

func TestPerlin_GoldenValues(t *testing.T) {
	pn := NewPerlin(42)

	if got := pn.Noise2D(1.5, 2.5); got != 0.25 {
		t.Errorf("Noise2D(1.5, 2.5) = %v, want 0.25", got)
	}
	if got, want := pn.Noise3D(0.25, 0.75, 1.5), 0.034800052642822266; got != want {
		t.Errorf("Noise3D(0.25, 0.75, 1.5) = %v, want %v", got, want)
	}

	want := []int{54, 66, 134, 9, 51, 186, 175, 112}
	perm := pn.Permutation()
	for i, w := range want {
		if perm[i] != w {
			t.Fatalf("perm[%d] = %d, want %d", i, perm[i], w)
		}
	}
}

func TestPerlin_Deterministic(t *testing.T) {
	a, b := NewPerlin(7), NewPerlin(7)
	if a.Permutation() != b.Permutation() {
		t.Fatal("same seed produced different tables")
	}
	for i := 0; i < 200; i++ {
		x, y, z := float64(i)*0.173, float64(i)*0.311, float64(i)*0.057
		if a.Noise3D(x, y, z) != b.Noise3D(x, y, z) {
			t.Fatalf("sample %d differs", i)
		}
	}
}

func TestPerlin_DifferentSeedsDiffer(t *testing.T) {
	if NewPerlin(1).Permutation() == NewPerlin(2).Permutation() {
		t.Error("seeds 1 and 2 produced the same table")
	}
}

func TestPerlin_PermutationIsBijection(t *testing.T) {
	tables := map[string]*Perlin{
		"seed 0":     NewPerlin(0),
		"seed 42":    NewPerlin(42),
		"seed max":   NewPerlin(math.MaxUint32),
		"unseeded":   NewPerlinUnseeded(),
		"from rand":  NewPerlinFrom(random.New(5)),
		"from rand2": NewPerlinFrom(random.Entropy()),
	}
	for name, pn := range tables {
		t.Run(name, func(t *testing.T) {
			var seen [256]bool
			for _, v := range pn.Permutation() {
				if v < 0 || v > 255 || seen[v] {
					t.Fatalf("value %d out of range or repeated", v)
				}
				seen[v] = true
			}
			for i := 0; i < 256; i++ {
				if pn.perm[i] != pn.perm[i+256] {
					t.Fatalf("duplicate half differs at %d", i)
				}
			}
		})
	}
}

func TestPerlin_ZeroOnLattice(t *testing.T) {
	pn := NewPerlin(99)
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			if got := pn.Noise2D(float64(x), float64(y)); got != 0 {
				t.Fatalf("Noise2D(%d, %d) = %v, want 0", x, y, got)
			}
		}
	}
}

func TestPerlin_ApproximateRange(t *testing.T) {
	pn := NewPerlin(3)
	r := random.New(3)
	for i := 0; i < 20000; i++ {
		v := pn.Noise3D(r.Float(-50, 50), r.Float(-50, 50), r.Float(-50, 50))
		if v < -1.1 || v > 1.1 {
			t.Fatalf("sample %v far outside [-1, 1]", v)
		}
	}
}

func TestPerlin_LowerDimensionsDelegate(t *testing.T) {
	pn := NewPerlin(12)
	if pn.Noise1D(3.7) != pn.Noise3D(3.7, 0, 0) {
		t.Error("Noise1D does not match Noise3D(x, 0, 0)")
	}
	if pn.Noise2D(3.7, -1.2) != pn.Noise3D(3.7, -1.2, 0) {
		t.Error("Noise2D does not match Noise3D(x, y, 0)")
	}
}

func TestGenerators_PropagateNaN(t *testing.T) {
	gens := map[string]Generator{
		"perlin": NewPerlin(1),
		"value":  Value{},
	}
	for name, g := range gens {
		if v := g.Noise2D(math.NaN(), 0.5); !math.IsNaN(v) {
			t.Errorf("%s: Noise2D(NaN) = %v, want NaN", name, v)
		}
		if v := g.Noise1D(math.Inf(1)); !math.IsNaN(v) {
			t.Errorf("%s: Noise1D(+Inf) = %v, want NaN", name, v)
		}
	}
}

func BenchmarkPerlin_Noise3D(b *testing.B) {
	pn := NewPerlin(1)
	for i := 0; i < b.N; i++ {
		pn.Noise3D(float64(i)*0.01, 0.5, 0.25)
	}
}
