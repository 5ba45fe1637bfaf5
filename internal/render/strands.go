package render

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"noisefield/noise"
	"noisefield/palette"
)

// Strands draws vertical sine strands whose phase and sway come from an
// animated noise field. Neighbouring strands overlap and blend, which gives
// the interference look.
type Strands struct {
	cache  *Cache
	anim   *noise.Animator
	count  int
	smooth []float64
}

func NewStrands(anim *noise.Animator, ramp palette.Ramp, count int) *Strands {
	return &Strands{
		cache:  NewCache(ramp),
		anim:   anim,
		count:  count,
		smooth: make([]float64, count),
	}
}

func (s *Strands) SetRamp(ramp palette.Ramp) {
	s.cache.SetRamp(ramp)
}

// Render draws one frame, one glyph per cell picked by intensity. chaos in
// [0,1] raises distortion.
func (s *Strands) Render(chaos float64, width, height int) string {
	if width <= 0 || height <= 0 || s.count == 0 {
		return ""
	}
	rows := height

	// Each strand's energy wanders with the field, smoothed so it does not jitter.
	const smoothFactor = 0.3
	lo, hi := noise.Bounds(s.anim.Generator())
	for i := range s.smooth {
		v := s.anim.Sample(float64(i)*0.37, 0.5, 0.2)
		e := (v - lo) / (hi - lo)
		s.smooth[i] = s.smooth[i]*(1-smoothFactor) + e*smoothFactor
	}

	colorGrid, intensityGrid := s.cache.GetGrids(rows, width)
	defer s.cache.ReturnGrids(colorGrid, intensityGrid)

	spacing := float64(width) / float64(s.count+1)
	for i := 0; i < s.count; i++ {
		base := s.cache.Lookup(float64(i) / math.Max(1, float64(s.count-1)))
		s.strand(colorGrid, intensityGrid, (float64(i)+1)*spacing, rows, width, s.smooth[i], chaos, base, i)
	}

	return glyphLines(s.cache, colorGrid, intensityGrid, width, rows)
}

var glyphRamp = []struct {
	min float64
	r   rune
}{
	{0.85, '█'},
	{0.65, '▓'},
	{0.45, '▒'},
	{0.25, '░'},
	{0.10, '·'},
}

// glyph maps intensity to a shading rune, blank below 0.10.
func glyph(intensity float64) rune {
	for _, g := range glyphRamp {
		if intensity > g.min {
			return g.r
		}
	}
	return ' '
}

// glyphLines writes each row as glyphs, grouping runs that share a color.
func glyphLines(c *Cache, colorGrid [][]lipgloss.Color, intensityGrid [][]float64, width, height int) string {
	sb := c.GetBuilder()
	defer c.ReturnBuilder(sb)

	run := make([]rune, 0, width)
	for y := 0; y < height; y++ {
		x := 0
		for x < width {
			g := glyph(intensityGrid[y][x])
			if g == ' ' {
				sb.WriteByte(' ')
				x++
				continue
			}

			fg := colorGrid[y][x]
			run = run[:0]
			for x < width && colorGrid[y][x] == fg {
				g = glyph(intensityGrid[y][x])
				if g == ' ' {
					break
				}
				run = append(run, g)
				x++
			}
			sb.WriteString(c.GetStyleFGBG(fg, "").Render(string(run)))
		}
		if y+1 < height {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (s *Strands) strand(
	colorGrid [][]lipgloss.Color,
	intensityGrid [][]float64,
	baseX float64,
	rows, width int,
	energy, chaos float64,
	color lipgloss.Color,
	idx int,
) {
	amplitude := 3 + energy*12
	frequency := 1.5 + energy*2.5
	phase := s.anim.Time() * (0.8 + chaos*1.5)

	for y := 0; y < rows; y++ {
		yNorm := float64(y) / float64(rows)
		angle := yNorm*math.Pi*2*frequency + phase + float64(idx)*0.2

		wave := s.anim.DistortWave(angle, 1, chaos)
		x := int(math.Round(baseX + wave*amplitude))

		// brightest mid-strand, fading to the top and bottom edges
		intensity := (0.6 + energy*0.4) * (1 - math.Abs(math.Sin(angle))*0.3) * math.Sin(yNorm*math.Pi)

		spread := 2
		if intensity > 0.65 {
			spread = 4
		}
		for dx := -spread; dx <= spread; dx++ {
			gx := x + dx
			if gx < 0 || gx >= width {
				continue
			}
			plot(colorGrid, intensityGrid, gx, y, color, intensity*math.Pow(0.5, math.Abs(float64(dx))))
		}
	}
}

// plot writes a heat-shaded pixel, blending with whatever is already there.
func plot(colorGrid [][]lipgloss.Color, intensityGrid [][]float64, x, y int, color lipgloss.Color, intensity float64) {
	if intensity < 0.08 {
		return
	}
	shaded := Heat(color, intensity)
	current := intensityGrid[y][x]

	switch {
	case current < 0.08:
		colorGrid[y][x] = shaded
		intensityGrid[y][x] = intensity
	default:
		ratio := intensity / (intensity + current)
		colorGrid[y][x] = Blend(colorGrid[y][x], shaded, ratio)
		intensityGrid[y][x] = math.Max(current, math.Min(1, current+intensity*0.5))
	}
}
