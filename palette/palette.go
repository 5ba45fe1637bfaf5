// Package palette maps scalar noise values onto colors.
package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"noisefield/mathx"
)

var (
	ErrStops   = errors.New("palette: a ramp needs at least two stops")
	ErrUnknown = errors.New("palette: unknown palette")
)

type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Ramp is a piecewise gradient blended in Lab space.
type Ramp struct {
	stops []Stop
}

// NewRamp spaces the given hex colors evenly over [0,1].
func NewRamp(hexes ...string) (Ramp, error) {
	if len(hexes) < 2 {
		return Ramp{}, ErrStops
	}
	stops := make([]Stop, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Ramp{}, fmt.Errorf("palette: stop %d: %w", i, err)
		}
		stops[i] = Stop{Pos: float64(i) / float64(len(hexes)-1), Color: c}
	}
	return Ramp{stops: stops}, nil
}

// NewRampStops builds a ramp from explicit stops, sorted by position.
func NewRampStops(stops ...Stop) (Ramp, error) {
	if len(stops) < 2 {
		return Ramp{}, ErrStops
	}
	s := append([]Stop(nil), stops...)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Pos < s[j].Pos })
	return Ramp{stops: s}, nil
}

func mustRamp(hexes ...string) Ramp {
	r, err := NewRamp(hexes...)
	if err != nil {
		panic(err)
	}
	return r
}

// At returns the ramp color at t. t is clamped to the stop range; NaN maps to
// the first stop. The zero Ramp has no stops and yields black.
func (r Ramp) At(t float64) colorful.Color {
	if len(r.stops) == 0 {
		return colorful.Color{}
	}
	first, last := r.stops[0], r.stops[len(r.stops)-1]
	if math.IsNaN(t) || t <= first.Pos {
		return first.Color
	}
	if t >= last.Pos {
		return last.Color
	}

	i := sort.Search(len(r.stops), func(i int) bool { return r.stops[i].Pos > t }) - 1
	a, b := r.stops[i], r.stops[i+1]
	local := mathx.InverseLerp(a.Pos, b.Pos, t)
	if local == 0 {
		return a.Color
	}
	return a.Color.BlendLab(b.Color, local).Clamped()
}

// Hex is At formatted as #RRGGBB.
func (r Ramp) Hex(t float64) string {
	return Hex(r.At(t))
}

func (r Ramp) Stops() []Stop {
	return append([]Stop(nil), r.stops...)
}
