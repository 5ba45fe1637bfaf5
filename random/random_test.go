package random

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestRand_Deterministic(t *testing.T) {
	a, b := New(987654321), New(987654321)
	for i := 0; i < 1000; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestRand_RegressionFixture(t *testing.T) {
	r := New(12345)

	if got, want := r.Next(), 0.02040268573909998; got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
	if got := r.State(); got != 87628868 {
		t.Errorf("State() = %d, want 87628868", got)
	}
	if got := r.Int(1, 6); got != 1 {
		t.Errorf("Int(1, 6) = %d, want 1", got)
	}
	if got := r.State(); got != 71072467 {
		t.Errorf("State() = %d, want 71072467", got)
	}
}

func TestRand_SeedReplaysFromCheckpoint(t *testing.T) {
	r := New(7)
	for i := 0; i < 10; i++ {
		r.Next()
	}
	checkpoint := r.State()
	want := []float64{r.Next(), r.Next(), r.Next()}

	r.Seed(checkpoint)
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Errorf("draw %d after Seed: %v, want %v", i, got, w)
		}
	}
}

func TestRand_SeedClearsGaussianCache(t *testing.T) {
	fresh := New(99)
	want := fresh.Gaussian(0, 1)

	r := New(99)
	r.Gaussian(0, 1) // leaves a cached deviate behind
	r.Seed(99)
	if got := r.Gaussian(0, 1); got != want {
		t.Errorf("Gaussian after Seed = %v, want %v", got, want)
	}
}

func TestRand_Ranges(t *testing.T) {
	r := New(1)
	for i := 0; i < 10000; i++ {
		if v := r.Next(); v < 0 || v >= 1 {
			t.Fatalf("Next() = %v outside [0,1)", v)
		}
		if v := r.Int(-3, 4); v < -3 || v > 4 {
			t.Fatalf("Int(-3, 4) = %d", v)
		}
		if v := r.Float(2.5, 3.5); v < 2.5 || v > 3.5 {
			t.Fatalf("Float(2.5, 3.5) = %v", v)
		}
	}
}

func TestRand_IntCoversBothEnds(t *testing.T) {
	r := New(2024)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		seen[r.Int(1, 6)] = true
	}
	for v := 1; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("Int(1, 6) never produced %d", v)
		}
	}
}

func TestRand_IntSwapsReversedBounds(t *testing.T) {
	r := New(5)
	for i := 0; i < 1000; i++ {
		if v := r.Int(10, 3); v < 3 || v > 10 {
			t.Fatalf("Int(10, 3) = %d", v)
		}
	}
}

func TestRand_GaussianStatistics(t *testing.T) {
	r := New(424242)
	samples := make([]float64, 10000)
	for i := range samples {
		samples[i] = r.Gaussian(0, 1)
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if math.Abs(mean) > 0.1 {
		t.Errorf("mean = %v, want ~0", mean)
	}
	if math.Abs(std-1) > 0.1 {
		t.Errorf("stddev = %v, want ~1", std)
	}
}

func TestRand_GaussianShifted(t *testing.T) {
	r := New(31337)
	samples := make([]float64, 10000)
	for i := range samples {
		samples[i] = r.Gaussian(10, 2)
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if math.Abs(mean-10) > 0.1 {
		t.Errorf("mean = %v, want ~10", mean)
	}
	if math.Abs(std-2) > 0.15 {
		t.Errorf("stddev = %v, want ~2", std)
	}
}

func TestRand_Circles(t *testing.T) {
	r := New(11)
	for i := 0; i < 5000; i++ {
		x, y := r.InCircle()
		if x*x+y*y > 1 {
			t.Fatalf("InCircle() = (%v, %v) outside unit disk", x, y)
		}
		x, y = r.OnCircle()
		if d := math.Hypot(x, y); math.Abs(d-1) > 1e-12 {
			t.Fatalf("OnCircle() length = %v", d)
		}
	}
}

func TestChoice(t *testing.T) {
	r := New(3)
	items := []string{"a", "b", "c"}
	for i := 0; i < 1000; i++ {
		got, err := Choice(r, items)
		if err != nil {
			t.Fatal(err)
		}
		if got != "a" && got != "b" && got != "c" {
			t.Fatalf("Choice returned %q", got)
		}
	}

	if _, err := Choice(r, []string{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("Choice(empty) error = %v, want ErrEmpty", err)
	}
}

func TestPerm_IsPermutation(t *testing.T) {
	r := New(8)
	p := Perm(r, 256)
	seen := make([]bool, 256)
	for _, v := range p {
		if v < 0 || v >= 256 || seen[v] {
			t.Fatalf("bad or repeated value %d", v)
		}
		seen[v] = true
	}
}

func TestWeightedChoice(t *testing.T) {
	r := New(17)
	items := []string{"never", "rare", "common"}
	weights := []float64{0, 1, 9}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		got, err := WeightedChoice(r, items, weights)
		if err != nil {
			t.Fatal(err)
		}
		counts[got]++
	}

	if counts["never"] != 0 {
		t.Errorf("zero-weight item picked %d times", counts["never"])
	}
	if share := float64(counts["common"]) / 10000; math.Abs(share-0.9) > 0.03 {
		t.Errorf("common share = %v, want ~0.9", share)
	}
}

func TestWeightedChoice_Errors(t *testing.T) {
	r := New(1)
	tests := []struct {
		name    string
		items   []int
		weights []float64
		want    error
	}{
		{"empty", nil, nil, ErrEmpty},
		{"length mismatch", []int{1, 2}, []float64{1}, ErrWeights},
		{"negative", []int{1, 2}, []float64{1, -1}, ErrWeights},
		{"nan", []int{1}, []float64{math.NaN()}, ErrWeights},
		{"all zero", []int{1, 2}, []float64{0, 0}, ErrWeights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := WeightedChoice(r, tt.items, tt.weights); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEntropy_Range(t *testing.T) {
	src := Entropy()
	for i := 0; i < 1000; i++ {
		if v := src.Next(); v < 0 || v >= 1 {
			t.Fatalf("Entropy().Next() = %v", v)
		}
	}
}
