package random

import (
	"errors"
	"math"
	"math/rand/v2"
)

var (
	ErrEmpty   = errors.New("random: empty collection")
	ErrWeights = errors.New("random: invalid weights")
)

// Choice picks a uniformly random element of items.
func Choice[T any](r *Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	return items[r.Int(0, len(items)-1)], nil
}

// Shuffle permutes items in place (Fisher-Yates, high index first).
func Shuffle[T any](r *Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Int(0, i)
		items[i], items[j] = items[j], items[i]
	}
}

// Perm returns a shuffled slice holding 0..n-1.
func Perm(r *Rand, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(r, p)
	return p
}

// WeightedChoice picks items[i] with probability weights[i] / sum(weights).
func WeightedChoice[T any](r *Rand, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	if len(weights) != len(items) {
		return zero, ErrWeights
	}

	var total float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return zero, ErrWeights
		}
		total += w
	}
	if total == 0 {
		return zero, ErrWeights
	}

	target := r.Next() * total
	for i, w := range weights {
		if target < w {
			return items[i], nil
		}
		target -= w
	}

	// rounding left target just past the end; take the last positive weight
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return items[i], nil
		}
	}
	return zero, ErrWeights
}

type entropy struct{}

func (entropy) Next() float64 { return rand.Float64() }

// Entropy returns a non-deterministic Source backed by the runtime-seeded
// math/rand/v2 generator. Use it where reproducibility is explicitly unwanted.
func Entropy() Source { return entropy{} }
