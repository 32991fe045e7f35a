package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// toRGBA converts a linear-blend color into 8-bit RGBA with the given
// opacity in [0, 1].
func toRGBA(c colorful.Color, alpha float64) color.RGBA {
	c = c.Clamped()
	a := clampUnit(alpha)
	r, g, b := c.RGB255()
	return color.RGBA{
		R: uint8(float64(r)*a + 0.5),
		G: uint8(float64(g)*a + 0.5),
		B: uint8(float64(b)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// emissive brightens a lit color toward its unlit base by amount.
func emissive(lit, base colorful.Color, amount float64) colorful.Color {
	if amount <= 0 {
		return lit
	}
	return colorful.Color{
		R: lit.R + base.R*amount,
		G: lit.G + base.G*amount,
		B: lit.B + base.B*amount,
	}.Clamped()
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
