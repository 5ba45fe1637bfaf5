// Package render draws noise fields and animated wave strands into styled
// terminal strings.
package render

import (
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"noisefield/mathx"
	"noisefield/palette"
)

// Renderer draws fields using upper half blocks: each terminal row shows two
// field rows, the top one as foreground and the bottom one as background.
type Renderer struct {
	cache *Cache
}

func NewRenderer(ramp palette.Ramp) *Renderer {
	return &Renderer{cache: NewCache(ramp)}
}

func (r *Renderer) SetRamp(ramp palette.Ramp) {
	r.cache.SetRamp(ramp)
}

// Field colors values (rows of equal length) after remapping [lo, hi] onto
// the ramp. The result has ceil(len(values)/2) lines.
func (r *Renderer) Field(values [][]float64, lo, hi float64) string {
	height := len(values)
	if height == 0 || len(values[0]) == 0 {
		return ""
	}
	width := len(values[0])

	colorGrid, intensityGrid := r.cache.GetGrids(height, width)
	defer r.cache.ReturnGrids(colorGrid, intensityGrid)

	// Rows are disjoint, so workers need no lock.
	workers := min(runtime.GOMAXPROCS(0), height)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for y := start; y < height; y += workers {
				for x, v := range values[y][:width] {
					t := mathx.InverseLerp(lo, hi, v)
					colorGrid[y][x] = r.cache.Lookup(t)
					intensityGrid[y][x] = 1
				}
			}
		}(w)
	}
	wg.Wait()

	return halfBlocks(r.cache, colorGrid, intensityGrid, width, height)
}

// halfBlocks folds pairs of rows into terminal lines, grouping horizontal
// runs that share the same foreground and background. Halves with intensity
// below 0.05 are left unpainted.
func halfBlocks(
	c *Cache,
	colorGrid [][]lipgloss.Color,
	intensityGrid [][]float64,
	width int,
	height int,
) string {
	sb := c.GetBuilder()
	defer c.ReturnBuilder(sb)

	cell := func(y, x int) (lipgloss.Color, float64) {
		if y >= height {
			return lipgloss.Color(""), 0
		}
		return colorGrid[y][x], intensityGrid[y][x]
	}

	for y := 0; y < height; y += 2 {
		x := 0
		for x < width {
			fg, top := cell(y, x)
			bg, bottom := cell(y+1, x)
			switch {
			case top < 0.05 && bottom < 0.05:
				sb.WriteByte(' ')
				x++
				continue
			case top < 0.05:
				sb.WriteString(c.GetStyleFGBG(bg, "").Render("▄"))
				x++
				continue
			case bottom < 0.05:
				bg = ""
			}

			start := x
			x++
			for x < width {
				nfg, nt := cell(y, x)
				nbg, nb := cell(y+1, x)
				if nb < 0.05 {
					nbg = ""
				}
				if nt < 0.05 || nfg != fg || nbg != bg {
					break
				}
				x++
			}

			style := c.GetStyleFGBG(fg, bg)
			sb.WriteString(style.Render(strings.Repeat("▀", x-start)))
		}
		if y+2 < height {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
