package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"noisefield/palette"
)

const lutSize = 256

// Cache pools the per-frame grids and builders and memoises lipgloss styles
// and ramp lookups, so steady-state frames allocate little.
type Cache struct {
	colorPool     sync.Pool
	intensityPool sync.Pool
	builderPool   sync.Pool

	styleMu    sync.RWMutex
	styleCache map[string]lipgloss.Style

	lut [lutSize]lipgloss.Color
}

func NewCache(ramp palette.Ramp) *Cache {
	c := &Cache{
		styleCache: make(map[string]lipgloss.Style, 1024),
		colorPool: sync.Pool{
			New: func() any { return make([][]lipgloss.Color, 0) },
		},
		intensityPool: sync.Pool{
			New: func() any { return make([][]float64, 0) },
		},
		builderPool: sync.Pool{
			New: func() any { return new(strings.Builder) },
		},
	}
	c.SetRamp(ramp)
	return c
}

// SetRamp rebuilds the quantised color table.
func (c *Cache) SetRamp(ramp palette.Ramp) {
	for i := range c.lut {
		c.lut[i] = lipgloss.Color(ramp.Hex(float64(i) / (lutSize - 1)))
	}
}

// Lookup maps t in [0,1] to the nearest table color. Out-of-range and NaN
// values clamp to the ends.
func (c *Cache) Lookup(t float64) lipgloss.Color {
	if !(t > 0) {
		return c.lut[0]
	}
	if t >= 1 {
		return c.lut[lutSize-1]
	}
	return c.lut[int(t*(lutSize-1)+0.5)]
}

func (c *Cache) GetGrids(height, width int) ([][]lipgloss.Color, [][]float64) {
	colorGrid := c.colorPool.Get().([][]lipgloss.Color)
	intensityGrid := c.intensityPool.Get().([][]float64)

	if len(colorGrid) < height || len(intensityGrid) < height {
		colorGrid = make([][]lipgloss.Color, height)
		intensityGrid = make([][]float64, height)
	}

	for y := 0; y < height; y++ {
		if len(colorGrid[y]) < width || len(intensityGrid[y]) < width {
			colorGrid[y] = make([]lipgloss.Color, width)
			intensityGrid[y] = make([]float64, width)
		}
		colorGrid[y] = colorGrid[y][:width]
		intensityGrid[y] = intensityGrid[y][:width]
		for x := 0; x < width; x++ {
			colorGrid[y][x] = lipgloss.Color("")
			intensityGrid[y][x] = 0
		}
	}
	return colorGrid[:height], intensityGrid[:height]
}

func (c *Cache) ReturnGrids(colorGrid [][]lipgloss.Color, intensityGrid [][]float64) {
	c.colorPool.Put(colorGrid)
	c.intensityPool.Put(intensityGrid)
}

func (c *Cache) GetStyleFGBG(fg, bg lipgloss.Color) lipgloss.Style {
	key := string(fg) + "," + string(bg)
	c.styleMu.RLock()
	style, ok := c.styleCache[key]
	c.styleMu.RUnlock()
	if ok {
		return style
	}

	c.styleMu.Lock()
	defer c.styleMu.Unlock()
	if style, ok = c.styleCache[key]; ok {
		return style
	}
	style = lipgloss.NewStyle().Foreground(fg)
	if bg != "" {
		style = style.Background(bg)
	}
	c.styleCache[key] = style
	return style
}

func (c *Cache) GetBuilder() *strings.Builder {
	sb := c.builderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

func (c *Cache) ReturnBuilder(sb *strings.Builder) {
	c.builderPool.Put(sb)
}

// Heat applies palette.Heat to a #RRGGBB color. Other strings pass through.
func Heat(base lipgloss.Color, intensity float64) lipgloss.Color {
	col, err := colorful.Hex(string(base))
	if err != nil {
		return base
	}
	return lipgloss.Color(palette.Hex(palette.Heat(col, intensity)))
}

// Blend mixes two #RRGGBB colors; if one is unparsable the other wins.
func Blend(c1, c2 lipgloss.Color, ratio float64) lipgloss.Color {
	a, err1 := colorful.Hex(string(c1))
	b, err2 := colorful.Hex(string(c2))
	switch {
	case err1 != nil:
		return c2
	case err2 != nil:
		return c1
	}
	return lipgloss.Color(palette.Hex(palette.Blend(a, b, ratio)))
}
