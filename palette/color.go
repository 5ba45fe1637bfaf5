package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"noisefield/mathx"
)

var (
	Plasma = mustRamp(
		"#5A0000", "#E10600", "#FF7A00", "#FFD400", "#3DFF4E",
		"#00E5FF", "#2F5BFF", "#6A00FF", "#FF00C8",
	)
	Retro = mustRamp(
		"#FF0080", "#FF0099", "#FF00CC", "#FF00FF", "#CC00FF",
		"#9900FF", "#6600FF", "#3300FF",
	)
	Terrain = mustRamp(
		"#0B1E4A", "#1F5FAF", "#E8D9A0", "#4C9A2A", "#2E6B1F", "#7A6A58", "#F4F4F4",
	)
	Grayscale = mustRamp("#000000", "#FFFFFF")
)

// Names lists the preset ramps in display order.
var Names = []string{"terrain", "plasma", "retro", "grayscale"}

func Named(name string) (Ramp, error) {
	switch name {
	case "terrain":
		return Terrain, nil
	case "plasma":
		return Plasma, nil
	case "retro":
		return Retro, nil
	case "grayscale":
		return Grayscale, nil
	}
	return Ramp{}, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Hex formats c as uppercase #RRGGBB after clamping to the RGB gamut.
func Hex(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Heat dims c by intensity and, above 0.7, pushes it towards white so the
// hottest cells glow.
func Heat(c colorful.Color, intensity float64) colorful.Color {
	intensity = mathx.Clamp(intensity, 0, 1)
	brightness := 0.2 + math.Pow(intensity, 0.7)*0.8

	heat := 0.0
	if intensity > 0.7 {
		heat = (intensity - 0.7) / 0.3
	}

	scaled := colorful.Color{R: c.R * brightness, G: c.G * brightness, B: c.B * brightness}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return scaled.BlendRgb(white, heat).Clamped()
}

// Blend mixes a and b linearly in RGB; ratio 0 is a, 1 is b.
func Blend(a, b colorful.Color, ratio float64) colorful.Color {
	return a.BlendRgb(b, mathx.Clamp(ratio, 0, 1))
}

// HSL builds a color from hue in degrees and saturation/lightness in [0,1].
// Hue wraps around the circle.
func HSL(h, s, l float64) colorful.Color {
	return colorful.Hsl(mathx.Wrap(h, 0, 360), mathx.Clamp(s, 0, 1), mathx.Clamp(l, 0, 1))
}

func ToHSL(c colorful.Color) (h, s, l float64) {
	return c.Hsl()
}
