// Package random provides a small seeded linear-congruential generator and
// the sampling helpers built on top of it.
//
// A Rand is not safe for concurrent use. Each animation loop, simulation or
// test should own its own instance.
package random

import (
	"math"
	"time"
)

const (
	lcgA   uint32 = 1664525
	lcgC   uint32 = 1013904223
	lcgMod        = 1 << 32
)

// Source is anything that yields uniform floats in [0,1).
type Source interface {
	Next() float64
}

// Rand is a 32-bit LCG. The same seed always produces the same sequence.
type Rand struct {
	state uint32

	// cached second Box-Muller deviate
	spare    float64
	hasSpare bool
}

func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// NewUnseeded seeds from the wall clock. Sequences are not reproducible.
func NewUnseeded() *Rand {
	return New(uint32(time.Now().UnixNano()))
}

// Next advances the state and returns state / 2^32.
func (r *Rand) Next() float64 {
	r.state = r.state*lcgA + lcgC
	return float64(r.state) / lcgMod
}

// Seed resets the generator to v, dropping any cached Gaussian deviate.
func (r *Rand) Seed(v uint32) {
	r.state = v
	r.spare = 0
	r.hasSpare = false
}

// State returns the current seed, usable as a checkpoint for Seed.
func (r *Rand) State() uint32 {
	return r.state
}

// Int returns an integer in [min, max], both ends inclusive.
func (r *Rand) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

func (r *Rand) Float(min, max float64) float64 {
	return r.Next()*(max-min) + min
}

func (r *Rand) Bool() bool {
	return r.Next() > 0.5
}

// Gaussian draws from N(mean, stddev^2) with the Box-Muller transform.
// Every other call is served from the cached sine deviate.
func (r *Rand) Gaussian(mean, stddev float64) float64 {
	if r.hasSpare {
		r.hasSpare = false
		return mean + r.spare*stddev
	}

	u1 := r.Next()
	for u1 == 0 {
		u1 = r.Next()
	}
	u2 := r.Next()

	mag := math.Sqrt(-2 * math.Log(u1))
	angle := 2 * math.Pi * u2

	r.spare = mag * math.Sin(angle)
	r.hasSpare = true
	return mean + mag*math.Cos(angle)*stddev
}

// InCircle returns a point uniformly distributed inside the unit disk.
func (r *Rand) InCircle() (x, y float64) {
	radius := math.Sqrt(r.Next())
	angle := r.Next() * 2 * math.Pi
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// OnCircle returns a unit vector with a uniformly distributed angle.
func (r *Rand) OnCircle() (x, y float64) {
	angle := r.Next() * 2 * math.Pi
	return math.Cos(angle), math.Sin(angle)
}
